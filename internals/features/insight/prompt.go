package insight

import (
	"fmt"
	"strings"
)

// Policy constants for the completion call. These are deliberately not
// per-request parameters.
const (
	ModelID     = "mistralai/mistral-7b-instruct:free"
	MaxTokens   = 2000
	Temperature = 0.7
)

// SystemPrompt is the fixed persona preamble.
const SystemPrompt = "Tu es un expert en relations humaines et en psychologie. " +
	"Tu analyses les réponses d'un questionnaire sur les socles relationnels " +
	"et tu génères des insights personnalisés et constructifs."

// QA is one ordered (question text, answer) pair.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BuildPrompt assembles the single user instruction block: header, the
// 1-indexed question/answer list, then the required report sections.
func BuildPrompt(pairs []QA) string {
	header := "Analyse les réponses suivantes d'un questionnaire relationnel et génère " +
		"un rapport structuré et utile. Utilise le texte exact de chaque question et " +
		"associe clairement la réponse correspondante."

	var qa strings.Builder
	for i, p := range pairs {
		if i > 0 {
			qa.WriteString("\n\n")
		}
		fmt.Fprintf(&qa, "%d. Q: %s\n   A: %s", i+1, p.Question, p.Answer)
	}

	instructions := "\n\nAttendus du rapport (en français):\n" +
		"- Analyse des priorités (avec références aux réponses)\n" +
		"- Points forts\n" +
		"- Zones d'amélioration\n" +
		"- Recommandations concrètes (liste)\n" +
		"- Synthèse finale courte\n\n" +
		"Format clair avec des titres en **gras**. Ne pas utiliser de texte barré."

	return header + "\n\n" + qa.String() + instructions
}
