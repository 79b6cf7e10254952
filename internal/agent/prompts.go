package agent

import "fmt"

// Default system prompts per household role. An explicit system_prompt in
// the agent config overrides these.
var rolePrompts = map[string]string{
	"homework": `You are a homework coordinator for a family. You track assignments,
due dates and study plans, and you keep advice concrete and age-appropriate.`,
	"email": `You draft and review household email. You keep tone warm but brief,
flag anything that needs a parent's sign-off, and never invent commitments.`,
	"policy": `You interpret household rules and policies (screen time, chores,
allowances). You explain what a rule means in a given situation and point out
when the rules are silent or conflicting.`,
	"counseling": `You prepare family-counseling conversation prompts. You stay neutral,
avoid diagnoses, and suggest questions that help family members hear each other.`,
}

const genericPrompt = `You are a household assistant agent. Analyze the request and answer
with practical, concrete guidance.`

// responseContract is appended to every system prompt so replies stay
// machine-extractable, with graceful degradation when the model ignores it.
const responseContract = `

When asked for an analysis, prefer replying with a single JSON object:
{"analysis": "...", "confidence": 0.0-1.0, "recommendations": ["..."]}
If you cannot, reply in plain text with recommendations as bullet points.`

func systemPromptFor(role, override string) string {
	if override != "" {
		return override + responseContract
	}
	if p, ok := rolePrompts[role]; ok {
		return p + responseContract
	}
	return genericPrompt + responseContract
}

func analysisPrompt(role string, payload string) string {
	return fmt.Sprintf("As the %s agent, analyze the following request and respond with your assessment.\n\n%s", role, payload)
}

const proposalPrompt = `Evaluate the following proposal for the household. Assess feasibility,
risks and benefits, and state how confident you are that it should go ahead.`

const insightsPromptTemplate = `Review the following %s data and provide 3-5 actionable insights.
Respond with a JSON array of strings, most important first.

%s`
