package agent

import (
	"text/template"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
)

// promptData is the value every prompt template is executed against.
type promptData struct {
	Input     string
	Specialty string
}

// Every prompt shares the same instructions and patient header; only the
// lead-in and the output sections differ per stage.
const sharedInstructions = `Your task:
- DO NOT repeat the input verbatim.
- Summarize and rephrase the information in your own words.
- Use clear, structured formatting with proper sections.
- If information is missing, state 'Not provided'.

Respond in this structured format:

**Patient Information:**
- Name: <name if available>
- Age: <age if available>
- Gender: <gender if available>
- Date of Visit: <date if available>
`

const closingInstruction = `
Use professional medical language and ensure each section is clearly separated.
`

const preparationPrompt = `Analyze the following patient EHR summary (plain text):

{{.Input}}

` + sharedInstructions + `
**Pre-Visit Summary:**

**Key Metrics Trend:**
• <bullet points about vital signs, lab values, trends>

**Issues Needing Follow-up:**
• <bullet points about concerns, complications, red flags>

**Medication Adherence:**
• <bullet points about current medications and adherence>

**Screenings Due:**
• <bullet points about recommended screenings, tests, follow-ups>
` + closingInstruction

const dialoguePrompt = `You are a {{.Specialty}} specialist. Analyze the following clinician-patient conversation (plain text):

{{.Input}}

` + sharedInstructions + `
**Conversation Analysis:**

**Missing Elements:**
• <bullet points about information that should have been collected>

**Clinical Alerts:**
• <bullet points about concerning symptoms, red flags, urgent issues>

**Structured Data:**

**Symptoms:**
• <bullet points about reported symptoms>

**Medications:**
• <bullet points about current medications>

**Allergies:**
• <bullet points about known allergies>

**Conditions:**
• <bullet points about medical conditions, diagnoses>
` + closingInstruction

const notePrompt = `Generate a SOAP note from the following structured medical data (plain text):

{{.Input}}

` + sharedInstructions + `
**SOAP Note:**

**Subjective:**
• <bullet points about patient's reported symptoms, history, concerns>

**Objective:**
• <bullet points about vital signs, physical exam findings, lab results>

**Assessment:**
• <bullet points about diagnoses, differential diagnoses, clinical impressions>

**Plan:**
• <bullet points about treatment plan, medications, follow-up, referrals>
` + closingInstruction

const codingPrompt = `You are a medical billing expert. Given the following structured clinical data (plain text):

{{.Input}}

` + sharedInstructions + `
**Billing Codes:**

**ICD-11 Codes:**
• <code>: <description> - <rationale>
• <code>: <description> - <rationale>

**CPT Codes:**
• <code>: <description> - <rationale>
• <code>: <description> - <rationale>

**E/M Level:**
• Level: <level> - <justification>
` + closingInstruction

// prompts are parsed once; a malformed template is a programming error.
var prompts = map[clinical.Stage]*template.Template{
	clinical.StagePreparation: template.Must(template.New("preparation").Parse(preparationPrompt)),
	clinical.StageDialogue:    template.Must(template.New("dialogue").Parse(dialoguePrompt)),
	clinical.StageNote:        template.Must(template.New("note").Parse(notePrompt)),
	clinical.StageCoding:      template.Must(template.New("coding").Parse(codingPrompt)),
}
