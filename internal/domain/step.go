package domain

// Step names the handler that should process the next free-text message
// from a chat. At most one step is pending per chat.
type Step string

const (
	StepContractNumber   Step = "contract_number"
	StepSelectLanguage   Step = "select_language"
	StepFormProject      Step = "form_project"
	StepFormTask         Step = "form_task"
	StepFormRestrictions Step = "form_restrictions"
	StepFormContactInfo  Step = "form_contact_info"
)
