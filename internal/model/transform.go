package model

type PromptType string

const (
	PromptTypePreset PromptType = "preset"
	PromptTypeCustom PromptType = "custom"
)

// TransformRequest is one uploaded street photo plus its instructions.
// PresetKey, when set, is the catalog lookup key and CustomPrompt is only user text.
type TransformRequest struct {
	Filename     string
	Image        []byte
	CustomPrompt string
	PresetKey    string
	PromptType   PromptType
}

// LookupKey is the text matched against preset keys.
func (r TransformRequest) LookupKey() string {
	if r.PresetKey != "" {
		return r.PresetKey
	}
	return r.CustomPrompt
}

type TransformResult struct {
	UploadName string
	UploadURL  string
	ImageURL   string
	MIMEType   string
	PresetKey  string
	Catalog    string
	Mode       string
	ElapsedMs  int64
}
