package insight

import (
	"context"
	"log"
)

// Result is the tagged outcome of one generation attempt. The raw provider
// response is folded into this shape at the boundary; nothing downstream
// inspects provider fields.
type Result struct {
	Content string `json:"content"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// FallbackReport is shown in place of a report when generation failed. It
// is deliberately generic and carries no session detail.
const FallbackReport = `**Erreur lors de la génération du rapport**

Désolé, nous n'avons pas pu générer votre rapport personnalisé à ce moment.

Vos réponses ont été enregistrées et vous pouvez :
- Réessayer plus tard
- Contacter le support si le problème persiste
- Consulter vos réponses directement dans votre espace personnel

Merci de votre compréhension.`

type Generator struct {
	provider Provider
}

func NewGenerator(provider Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate runs one completion attempt over the ordered QA pairs. It never
// returns an error: provider misconfiguration, transport failures and empty
// output all come back as Success=false with the captured reason.
func (g *Generator) Generate(ctx context.Context, pairs []QA) Result {
	if g.provider == nil {
		log.Println("⚠️ insight: no provider wired")
		return Result{Success: false, Error: ErrNotConfigured.Error()}
	}

	out, err := g.provider.Complete(ctx, SystemPrompt, BuildPrompt(pairs))
	if err != nil {
		log.Printf("[WARN] insight generation failed: %v", err)
		return Result{Success: false, Error: err.Error()}
	}

	return Result{Content: FormatContent(out), Success: true}
}
