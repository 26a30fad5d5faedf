package exercise

// Step is one instruction of a guided exercise.
type Step struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
}

// Template is a built-in exercise.
type Template struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Steps       []Step `json:"steps"`
}

var Templates = []Template{
	{
		ID:          "active_listening",
		Title:       "Active listening",
		Description: "Take turns speaking and reflecting back what you heard without judgement.",
		Steps: []Step{
			{Title: "Choose a topic", Instructions: "Pick something that matters to one of you but is not a current fight."},
			{Title: "Speaker shares", Instructions: "The speaker talks for three minutes using I-statements."},
			{Title: "Listener reflects", Instructions: "The listener summarises what they heard and asks if they got it right."},
			{Title: "Swap roles", Instructions: "Repeat with the other partner as the speaker."},
			{Title: "Debrief", Instructions: "Share how it felt to be heard."},
		},
	},
	{
		ID:          "gratitude_exchange",
		Title:       "Gratitude exchange",
		Description: "Name specific things you appreciate about each other.",
		Steps: []Step{
			{Title: "Write three things", Instructions: "Each partner writes three specific things they appreciated this week."},
			{Title: "Share", Instructions: "Read them to each other, one at a time."},
			{Title: "Respond", Instructions: "Say how hearing each one made you feel."},
		},
	},
	{
		ID:          "repair_conversation",
		Title:       "Repair conversation",
		Description: "Revisit a recent argument calmly and agree on what to do differently.",
		Steps: []Step{
			{Title: "Calm down", Instructions: "Make sure both of you feel settled before starting."},
			{Title: "Describe your experience", Instructions: "Each partner describes what they felt and needed, without blame."},
			{Title: "Own your part", Instructions: "Each partner names one thing they could have done differently."},
			{Title: "Plan", Instructions: "Agree on one concrete change for next time."},
		},
	},
}

// FindTemplate looks up a template by id.
func FindTemplate(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
