package extractor

import "fmt"

const levelVocabInstructions = `Infer a proficiency level for each skill from the five-level set:
none, basic, working, proficient, advanced.
Use explicit signals where present: stated years of experience, verbs
indicating depth of ownership ("led", "architected", "built", "owned"),
and scale indicators (team size, traffic, data volume). When the text
gives no signal for a skill, omit the "level" field entirely rather than
guessing — the caller applies a documented default.`

func allInOnePrompt(text string, isJobDescription bool) string {
	kind := "resume"
	extra := ""
	if isJobDescription {
		kind = "job description"
		extra = `Mark "nice_to_have": true for skills explicitly described as
preferred, bonus, or nice-to-have rather than required.`
	}
	return fmt.Sprintf(`Extract every skill and task mentioned in the following %s, along
with each skill's proficiency level and the responsibilities described.

%s
%s

For each skill, where possible include "evidence": a list of
{"start", "end", "text"} character offsets into the source text
substantiating the inferred level.

Source text:
%s`, kind, levelVocabInstructions, extra, text)
}

func skillsOnlyPrompt(text string, isJobDescription bool) string {
	kind := "resume"
	if isJobDescription {
		kind = "job description"
	}
	return fmt.Sprintf(`Extract every skill and task mentioned in the following %s, along
with each skill's proficiency level.

%s

Source text:
%s`, kind, levelVocabInstructions, text)
}

func responsibilitiesPrompt(text string) string {
	return fmt.Sprintf(`List the responsibilities and duties described in the following text,
one per array entry, as plain sentences.

Source text:
%s`, text)
}

func reaskPrompt(originalPrompt, errMsg string) string {
	return fmt.Sprintf(`%s

Your previous response was rejected: %s
Return ONLY a corrected JSON object. Do not include any explanation or
markdown formatting.`, originalPrompt, errMsg)
}
