package render

// Fixed consent and signature boilerplate composed below the two arch
// diagrams. Static text, not derived from annotation data.
const (
	titleMaxillary  = "Maxillary Arch (Upper Jaw) - Universal Numbering System"
	titleMandibular = "Mandibular Arch (Lower Jaw) - Universal Numbering System"

	consentHeading = "TREATMENT PLAN UNDERSTANDING & CONSENT:"
	consentBody1   = "I understand the proposed treatment plan including any modifications to my teeth as shown above."
	consentBody2   = "I have had all my questions answered and consent to proceed with treatment."

	captionSignature = "Patient Signature"
	captionDate      = "Date"
)
