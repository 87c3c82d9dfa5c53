package content

// Static lesson content for Unit 1.1 "Conversation". The arcade is the
// gameful half of the app; these read-only structures are the lesson half.

// PhraseCategory sorts a vibe-card phrase: green (do it), yellow (careful),
// red (avoid).
type PhraseCategory string

const (
	PhraseGreen  PhraseCategory = "green"
	PhraseYellow PhraseCategory = "yellow"
	PhraseRed    PhraseCategory = "red"
)

// Phrase is one vibe card with its concept-check questions.
type Phrase struct {
	ID         string         `json:"id"`
	Text       string         `json:"text"`
	Category   PhraseCategory `json:"category"`
	CCQs       []string       `json:"ccqs"`
	Definition string         `json:"definition"`
}

// LessonStage is one timed stage of the lesson plan.
type LessonStage struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Duration     int      `json:"duration"` // minutes
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Instructions string   `json:"instructions"`
	ICQs         []string `json:"icqs"`
}

// Phrases returns the vibe-card deck.
func Phrases() []Phrase {
	return conversationPhrases
}

// LessonPlan returns the ordered lesson stages.
func LessonPlan() []LessonStage {
	return lessonPlan
}

// SpeakingQuestions returns the speaking-corner prompt list.
func SpeakingQuestions() []string {
	return speakingQuestions
}

var conversationPhrases = []Phrase{
	{ID: "1", Text: "put someone at ease", Category: PhraseGreen, CCQs: []string{"Relaxed or nervous? (Relaxed)", "Comfortable speaking? (Yes)"}, Definition: "To make someone feel relaxed and comfortable."},
	{ID: "2", Text: "listen enthusiastically", Category: PhraseGreen, CCQs: []string{"Interested or bored? (Interested)", "Phone in hand? (No)"}, Definition: "To show genuine interest while listening."},
	{ID: "3", Text: "establish shared interests", Category: PhraseGreen, CCQs: []string{"Find something you both like? (Yes)", "Easier conversation after? (Yes)"}, Definition: "To find topics you both enjoy."},
	{ID: "4", Text: "ask appropriate questions", Category: PhraseGreen, CCQs: []string{"Polite? (Yes)", "Too personal? (No)"}, Definition: "Asking questions that fit the situation."},
	{ID: "5", Text: "make small talk", Category: PhraseGreen, CCQs: []string{"Deep topic? (No)", "Safe topics? (Yes)"}, Definition: "Polite conversation about unimportant things."},
	{ID: "6", Text: "make a good impression", Category: PhraseGreen, CCQs: []string{"Want them to like you? (Yes)", "Important for first meeting? (Yes)"}, Definition: "To make people admire or like you."},
	{ID: "7", Text: "tell an entertaining story", Category: PhraseGreen, CCQs: []string{"Boring? (No)", "Do people laugh? (Often)"}, Definition: "Sharing a story that amuses others."},
	{ID: "8", Text: "hit it off", Category: PhraseGreen, CCQs: []string{"Like each other quickly? (Yes)", "Easy conversation? (Yes)"}, Definition: "To be friendly with each other immediately."},
	{ID: "9", Text: "have awkward silences", Category: PhraseYellow, CCQs: []string{"Comfortable? (No)", "People nervous? (Yes)"}, Definition: "Uncomfortable pauses in conversation."},
	{ID: "10", Text: "have a misunderstanding", Category: PhraseYellow, CCQs: []string{"Same meaning? (No)", "Need to clarify? (Yes)"}, Definition: "A failure to understand correctly."},
	{ID: "11", Text: "have a row", Category: PhraseRed, CCQs: []string{"Friendly? (No)", "Loud voices? (Yes)"}, Definition: "To have a noisy argument."},
	{ID: "12", Text: "put your foot in it", Category: PhraseRed, CCQs: []string{"Situation better? (No)", "Embarrassed? (Yes)"}, Definition: "To say something upsetting or embarrassing by accident."},
	{ID: "13", Text: "offend someone", Category: PhraseRed, CCQs: []string{"Do they feel happy? (No)", "Need to apologize? (Yes)"}, Definition: "To make someone upset or angry."},
	{ID: "14", Text: "dominate the conversation", Category: PhraseRed, CCQs: []string{"Others speak? (No)", "Polite? (No)"}, Definition: "To talk too much and prevent others from speaking."},
}

var lessonPlan = []LessonStage{
	{
		ID: "stage-1", Title: "Lead-in: Cringe Detector", Duration: 5, Type: "lead-in",
		Description:  "Look at the pictures. Identify the awkward moment.",
		Instructions: "Pick ONE picture and say what the misunderstanding is.",
		ICQs:         []string{"One picture or all? (One)", "Writing? (No)", "Explain why? (Yes)"},
	},
	{
		ID: "stage-2", Title: "Vibe Cards: Lexis Sorting", Duration: 10, Type: "vocabulary",
		Description:  "Sort the phrases into Green (Do it), Yellow (Careful), Red (Avoid).",
		Instructions: "Drag the cards to the correct zone.",
		ICQs:         []string{"How many columns? (3)", "Green good or bad? (Good)"},
	},
	{
		ID: "stage-3", Title: "Grammar Focus: Question Types", Duration: 20, Type: "grammar",
		Description:  "Learn the rules for Subject, Indirect, and Preposition questions.",
		Instructions: "Analyze the sentence structures on the board.",
		ICQs:         []string{"Are we learning rules? (Yes)", "Do subject questions need \"do\"? (No)"},
	},
	{
		ID: "stage-4", Title: "Task: Cross-Cultural Survival Quest", Duration: 25, Type: "task",
		Description:  "Complete the survival missions using 4 Green Phrases + 1 Indirect Q + 1 Prep Q.",
		Instructions: "Roleplay: Airport -> New Class -> Café.",
		ICQs:         []string{"How many missions? (3)", "Reading from a book? (No)"},
	},
	{
		ID: "stage-5", Title: "Exit Ticket", Duration: 1, Type: "feedback",
		Description:  "Reflect on the lesson.",
		Instructions: "Write 2 lines: what you will use and your best question type.",
		ICQs:         []string{"Two lines? (Yes)", "Essay? (No)"},
	},
}

var speakingQuestions = []string{
	"Who comments on your posts the most?",
	"Do you know why some people are obsessed with TikTok?",
	"What are you listening to on Spotify right now?",
	"Who usually sends the funniest memes in your group chat?",
	"Do you think it's rude to leave someone on 'read'?",
	"What app do you spend the most time on?",
	"Who has the best aesthetic on Instagram?",
	"Do you know if your parents check your phone history?",
	"What are you stressing about regarding your online reputation?",
	"Who taught you how to edit videos?",
	"Do you know where the best place to take selfies is?",
	"What are you waiting for before you post a new photo?",
	"Who unfollowed you recently (if anyone)?",
	"Do you know if it's possible to live without a smartphone today?",
	"What video game are you addicted to lately?",
	"Who plays video games better: you or your best friend?",
	"Do you know why 'ghosting' has become so common?",
	"What are you looking for in a gaming partner?",
	"Who usually dominates the conversation in your group chat?",
	"Do you think influencers actually make a good impression?",
}
