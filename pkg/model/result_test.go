package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestPSNRMarshalsInfinityAsString(t *testing.T) {
	raw, err := json.Marshal(ProcessingResult{PSNR: PSNR(math.Inf(1))})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var generic map[string]any
	if err = json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if generic["psnr"] != "Infinity" {
		t.Errorf("expected \"Infinity\", got %v", generic["psnr"])
	}

	var decoded ProcessingResult
	if err = json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !decoded.PSNR.IsInf() {
		t.Errorf("expected an infinite PSNR after decoding, got %v", decoded.PSNR)
	}
}

func TestPSNRMarshalsFiniteAsNumber(t *testing.T) {
	raw, err := json.Marshal(PSNR(31.25))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(raw) != "31.25" {
		t.Errorf("expected 31.25, got %s", raw)
	}

	var decoded PSNR
	if err = json.Unmarshal([]byte("\"bogus\""), &decoded); err == nil {
		t.Errorf("expected an error for a non numeric string")
	}
}
