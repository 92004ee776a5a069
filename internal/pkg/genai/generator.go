package genai

import (
	"context"

	"github.com/gentle-app/gentle-api/internal/config"
	"github.com/gentle-app/gentle-api/internal/infra/llm"
	"go.uber.org/zap"
)

// ChatCompleter is the outbound surface of the generative backend. The
// real implementation is llm.Client; tests substitute their own.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, model, system, user string, maxTokens int) (string, error)
}

// Generator produces structured content from the generative model. Every
// operation is total: on any backend or parse failure it returns a fixed
// deterministic payload instead of an error.
type Generator struct {
	cfg config.OpenAICfg
	log *zap.Logger

	// newClient is swapped in tests; the default wraps llm.NewClient.
	newClient func(config.OpenAICfg) (ChatCompleter, error)
}

func New(cfg config.OpenAICfg, log *zap.Logger) *Generator {
	return &Generator{
		cfg: cfg,
		log: log,
		newClient: func(c config.OpenAICfg) (ChatCompleter, error) {
			return llm.NewClient(c), nil
		},
	}
}

// client resolves a usable backend client, or nil with the fallback
// reason logged. Mirrors the credential-type dispatch: project and
// service account keys require org and project ids.
func (g *Generator) client() ChatCompleter {
	kt := llm.ClassifyKey(g.cfg.APIKey)
	switch kt {
	case llm.KeyTypeNone:
		g.log.Sugar().Warnw("ai fallback", "reason", "no_key")
		return nil
	case llm.KeyTypeProject, llm.KeyTypeServiceAccount:
		if g.cfg.OrgID == "" || g.cfg.ProjectID == "" {
			g.log.Sugar().Warnw("ai fallback", "reason", "missing_org_project_for_"+string(kt))
			return nil
		}
		c, err := g.newClient(g.cfg)
		if err != nil {
			g.log.Sugar().Warnw("ai fallback", "reason", "client_init_failed", "err", err)
			return nil
		}
		return c
	case llm.KeyTypeClassic:
		c, err := g.newClient(g.cfg)
		if err != nil {
			g.log.Sugar().Warnw("ai fallback", "reason", "client_init_failed", "err", err)
			return nil
		}
		return c
	default:
		g.log.Sugar().Warnw("ai fallback", "reason", "unknown_key_type")
		return nil
	}
}

func (g *Generator) logUse() {
	g.log.Sugar().Infow("ai backend used",
		"model", g.cfg.Model,
		"key_type", string(llm.ClassifyKey(g.cfg.APIKey)),
	)
}

func (g *Generator) logAPIError(err error) {
	g.log.Sugar().Warnw("ai fallback", "reason", "api_error", "err", err)
}

// retryInstruction is appended to the system prompt on the second and
// final attempt when the first response was not usable JSON.
const retryInstruction = "\n\nReturn ONLY valid JSON, no other text."
