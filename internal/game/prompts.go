package game

import (
	"fmt"

	"github.com/pixelgrind/viralfail/internal/rubric"
)

// creationRequest is the round-1 request to the content creator.
func creationRequest(topic string, r rubric.Rubric) string {
	return fmt.Sprintf(
		"Create a %s post about this trending gaming topic: %s\n\n"+
			"Platform: %s\n"+
			"Format hint: %s\n\n"+
			"Make it feel native to %s. Go hard — safe content doesn't go viral.",
		r.Platform, topic, r.Platform, r.FormatHint, r.Platform,
	)
}

// revisionRequest embeds the previous round's evaluation and reaction
// verbatim and asks the creator to address both.
func revisionRequest(round, maxRounds int, topic, platform, personaName, evaluation, reaction string) string {
	return fmt.Sprintf(
		"REVISION REQUEST (Round %d/%d):\n\n"+
			"The Algorithm Simulator and Audience Persona reviewed your %s post about '%s'. Here's their feedback:\n\n"+
			"--- ALGORITHM FEEDBACK ---\n%s\n\n"+
			"--- AUDIENCE FEEDBACK (%s) ---\n%s\n\n"+
			"Revise your content to address their concerns. Keep what works, fix what doesn't. Show what you changed and why.",
		round, maxRounds, platform, topic, evaluation, personaName, reaction,
	)
}

// evaluationRequest embeds the full rubric and the content to score.
func evaluationRequest(topic string, r rubric.Rubric, content string) string {
	return fmt.Sprintf(
		"Evaluate this %s post about '%s' using the platform's scoring rubric.\n\n"+
			"--- SCORING RUBRIC ---\n%s\n\n"+
			"--- CONTENT TO EVALUATE ---\n%s\n\n"+
			"Score each criterion out of 100, then calculate the weighted total. "+
			"Be specific and reference platform algorithm mechanics.",
		r.Platform, topic, r.PromptBlock(), content,
	)
}

// reactionRequest asks the audience persona for an in-character reaction.
func reactionRequest(topic, platform, content string) string {
	return fmt.Sprintf(
		"You just saw this on your %s feed. It's about '%s'. React naturally as yourself.\n\n"+
			"--- THE POST ---\n%s",
		platform, topic, content,
	)
}
