package prompt

import (
	"fmt"
	"strings"

	"github.com/shinyyama/street-transform/internal/preset"
)

const (
	DefaultUserRequest   = "Modern city street transformation"
	NoGuidelines         = "No specific guidelines provided."
	NoCustomization      = "No additional customization requested."
	outputRequirement    = "Generate a high-fidelity, photorealistic image of the transformed street.\nEnsure the perspective matches the original image."
	fallbackOutputStyle  = "Photorealistic street view. Keep the original camera angle, perspective, and surrounding buildings.\nBright, clear daytime lighting. No text, no watermark."
	presetRole           = "Act as a professional Urban Designer using the 'Street Experiments Tool' (SET) methodology."
	fallbackRole         = "You are an expert urban designer editing a real street view photograph."
	userPrecedenceNotice = "The user's request takes precedence over the design guidelines below whenever they conflict."
)

// Composed is the instruction text sent to the image model. NegativePrompt is
// empty when no preset resolved.
type Composed struct {
	Text           string
	NegativePrompt string
}

func (c Composed) HasNegativePrompt() bool {
	return c.NegativePrompt != ""
}

// Compose renders the preset template when p is non-nil and the generic
// fallback otherwise. It never fails; empty inputs are replaced by fixed text.
func Compose(p *preset.Preset, userText, knowledge string) Composed {
	if p != nil {
		return Composed{
			Text:           renderPreset(*p, userText, knowledge),
			NegativePrompt: p.NegativePrompt,
		}
	}
	return Composed{Text: renderFallback(userText, knowledge)}
}

func renderPreset(p preset.Preset, userText, knowledge string) string {
	custom := userText
	if strings.TrimSpace(custom) == "" {
		custom = NoCustomization
	}

	var sb strings.Builder
	section(&sb, "System", presetRole)
	section(&sb, "Objective", fmt.Sprintf("Apply a \"%s\" intervention (%s) to the provided street view image.", p.Typology, p.EnglishName))

	details := fmt.Sprintf("- Measure Name: %s\n- Design Logic: %s", p.EnglishName, p.Description)
	if p.ManualReference != "" {
		details += "\n- Reference Manual: " + p.ManualReference
	}
	section(&sb, "Measure Details", details)
	section(&sb, "Visual Elements for Generation", "- Key Elements: "+p.Keywords)
	section(&sb, "User Customization", fmt.Sprintf("The user specifically requested: \"%s\"\n(Integrate this seamlessly into the %s design.)", custom, p.EnglishName))
	section(&sb, "Output Requirement", outputRequirement)
	if strings.TrimSpace(knowledge) != "" {
		section(&sb, "Additional Context", knowledge)
	}
	return strings.TrimSuffix(sb.String(), "\n\n")
}

func renderFallback(userText, knowledge string) string {
	request := userText
	if strings.TrimSpace(request) == "" {
		request = DefaultUserRequest
	}
	guidelines := knowledge
	if strings.TrimSpace(guidelines) == "" {
		guidelines = NoGuidelines
	}

	var sb strings.Builder
	section(&sb, "Role", fallbackRole)
	section(&sb, "User Request", request+"\n"+userPrecedenceNotice)
	section(&sb, "Design Guidelines", guidelines)
	section(&sb, "Output Style", fallbackOutputStyle)
	return strings.TrimSuffix(sb.String(), "\n\n")
}

func section(sb *strings.Builder, label, body string) {
	sb.WriteString("[")
	sb.WriteString(label)
	sb.WriteString("]\n")
	sb.WriteString(body)
	sb.WriteString("\n\n")
}
