package ai

import "strings"

const sceneAnalysisPrompt = `You are describing a real street-view photo so that it can be redrawn faithfully.

Describe only what is visible, in plain sentences:

* Camera position, viewing direction and horizon height.
* Road layout: number of lanes, lane markings, curbs, sidewalks, crossings and intersections.
* Buildings and frontages on each side, including arcades, shop signs and building heights.
* Existing trees, street furniture, poles, parked vehicles and people.
* Lighting, weather and time of day.

Do not suggest changes. Do not mention that this is a photo.`

const analyzedPrefix = `A photorealistic street view image of the scene below, keeping the same camera position, perspective, buildings and surroundings.`

const knowledgeSummaryPrompt = `You are an expert urban planner and design assistant.
Analyze the provided documents (text and PDFs).
The PDFs may contain visual diagrams, cross-sections, and example photos.

Extract the key DESIGN PRINCIPLES, VISUAL STYLES, and SPECIFIC GUIDELINES for street transformation.
Focus on:
1. Road layout and geometry.
2. Materials and textures.
3. Street furniture and greenery.
4. Any specific aesthetic or functional rules.

Summarize these into a concise set of instructions for an AI image generator.`

const (
	notesIntro     = "Here are some text notes:\n"
	documentsIntro = "Here are some PDF documents containing design guidelines, diagrams, and images."
	avoidLabel     = "[Avoid]"
)

// BuildAnalyzedPrompt prepends the scene description to the composed prompt.
func BuildAnalyzedPrompt(scene, composed string) string {
	parts := []string{analyzedPrefix, "[Scene]\n" + strings.TrimSpace(scene), composed}
	return strings.Join(parts, "\n\n")
}

// withAvoidList folds a negative prompt into the prompt text for models that
// take no separate negative prompt.
func withAvoidList(prompt, negative string) string {
	negative = strings.TrimSpace(negative)
	if negative == "" {
		return prompt
	}
	return prompt + "\n\n" + avoidLabel + "\n" + negative
}
