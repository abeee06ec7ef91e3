package model

// ProtectedFile describes one image written by a batch protect run.
type ProtectedFile struct {
	Source string           `json:"source" yaml:"source"`
	Output string           `json:"output" yaml:"output"`
	Result ProcessingResult `json:"result" yaml:"result"`
	Stats  ProtectStats     `json:"stats" yaml:"stats"`
}
