package interview

// DefaultQuestions is the standard pre-assessment script. Order matters:
// the flow asks them exactly as listed. The closing lifestyle question is
// the only optional one.
var DefaultQuestions = []Question{
	{
		ID:       "chief_complaint",
		Text:     "Can you tell me in your own words why you are coming for surgery and how you are feeling?",
		Required: true,
	},
	{
		ID:       "allergies",
		Text:     "Do you have any allergies, especially to medicine, latex, or food?",
		Required: true,
	},
	{
		ID:       "medications",
		Text:     "Are you currently taking any medications? Please include prescription, over-the-counter, and supplements.",
		Required: true,
	},
	{
		ID:       "past_surgery",
		Text:     "Have you had any operations or anesthesia in the past? If yes, did you have any complications?",
		Required: true,
	},
	{
		ID:       "chronic_diseases",
		Text:     "Do you have any chronic illnesses such as heart disease, lung disease, diabetes, kidney problems, or others?",
		Required: true,
	},
	{
		ID:       "smoking_alcohol",
		Text:     "Do you smoke, vape, or drink alcohol? If yes, how much and how often?",
		Required: false,
	},
}
