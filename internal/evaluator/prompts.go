package evaluator

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/codecampus/pathway/internal/assessment"
)

const ideaSystemPrompt = `You are an experienced product mentor reviewing a student's project idea. Score each listed criterion from 0 to 100.

Instructions:
- Judge innovation by how the idea differs from common tutorial projects.
- Judge feasibility by whether a beginner could build it with the stated scope.
- Judge learning value by how much building it would teach.
- Report concrete issues with a severity (critical, major, minor) and a suggested fix.
- Only reference criteria from the provided list.
- Keep each issue summary to one sentence.`

const uiSystemPrompt = `You are a senior UI reviewer assessing a student's interface screenshots. Score each listed criterion from 0 to 100.

Instructions:
- Judge compliance by whether the screens cover the task requirements.
- Judge usability by clarity of flows, affordances, and feedback.
- Judge information architecture by grouping, hierarchy, and navigation.
- Report concrete issues with a severity (critical, major, minor) and a suggested fix.
- Only reference criteria from the provided list.
- Keep each issue summary to one sentence.`

const codeSystemPrompt = `You are a strict but constructive code reviewer assessing a student's submission. Score each listed criterion from 0 to 100.

Instructions:
- Correctness and security problems that would break or expose the application are critical.
- Style and naming problems are minor unless they obscure behavior.
- Report concrete issues with a severity (critical, major, minor) and a suggested fix.
- Only reference criteria from the provided list.
- Keep each issue summary to one sentence.`

func renderIdeaInput(artifact assessment.Artifact) (string, error) {
	if artifact.IdeaText == "" {
		return "", fmt.Errorf("artifact has no idea text")
	}
	return artifact.IdeaText, nil
}

func renderUIInput(artifact assessment.Artifact) (string, error) {
	if len(artifact.UIImages) == 0 {
		return "", fmt.Errorf("artifact has no UI images")
	}
	var b strings.Builder
	b.WriteString("Screens submitted:\n")
	for i, img := range artifact.UIImages {
		fmt.Fprintf(&b, "%d. %s\n", i+1, img)
	}
	return b.String(), nil
}

var codeInputTemplate = template.Must(template.New("code").Parse(`{{if .CodeRepo}}Repository: {{.CodeRepo}}
{{end}}{{range $i, $s := .CodeSnippets}}--- snippet {{$i}} ---
{{$s}}
{{end}}`))

func renderCodeInput(artifact assessment.Artifact) (string, error) {
	if artifact.CodeRepo == "" && len(artifact.CodeSnippets) == 0 {
		return "", fmt.Errorf("artifact has no code")
	}
	var buf bytes.Buffer
	if err := codeInputTemplate.Execute(&buf, artifact); err != nil {
		return "", err
	}
	return buf.String(), nil
}
