// Package iogemini implements flora.ReportAssembler with Google Gemini.
// This is an impure I/O package.
package iogemini

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/gnames/gnfmt"
	"google.golang.org/genai"
)

// APIKeyEnv is the environment variable used when the config has no API
// key.
const APIKeyEnv = "GEMINI_API_KEY"

// Generator produces content from prompts. It is satisfied by
// genai.Client.Models.
type Generator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

type assembler struct {
	gen           Generator
	model         string
	metadataLimit int
}

// New creates a Gemini-backed assembler. The API key is taken from the
// config or from GEMINI_API_KEY.
func New(ctx context.Context, cfg *config.Config) (flora.ReportAssembler, error) {
	key := cfg.Report.APIKey
	if key == "" {
		key = os.Getenv(APIKeyEnv)
	}
	if key == "" {
		return nil, ClientError(fmt.Errorf("%s is not set", APIKeyEnv))
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, ClientError(err)
	}
	return NewWithGenerator(client.Models, cfg), nil
}

// NewWithGenerator creates an assembler with a custom generator.
func NewWithGenerator(gen Generator, cfg *config.Config) flora.ReportAssembler {
	return &assembler{
		gen:           gen,
		model:         cfg.Report.Model,
		metadataLimit: cfg.Report.MetadataLimit,
	}
}

// Assemble implements flora.ReportAssembler.
func (a *assembler) Assemble(
	ctx context.Context,
	input flora.ReportInput,
) flora.Report {
	start := time.Now()
	prompt := buildPrompt(input, a.metadataLimit)
	slog.Info("Requesting report",
		"model", a.model,
		"prompt_size", len(prompt),
		"with_user_input", strings.TrimSpace(input.UserInput) != "",
	)

	resp, err := a.gen.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		generateConfig(),
	)
	res := interpret(resp, err)

	slog.Info("Report finished",
		"failed", res.Failed,
		"reason", res.Reason,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return res
}

// generateConfig disables blocking for the harm categories that botanical
// texts trigger by mistake.
func generateConfig() *genai.GenerateContentConfig {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, len(categories))
	for i, v := range categories {
		settings[i] = &genai.SafetySetting{
			Category:  v,
			Threshold: genai.HarmBlockThresholdBlockNone,
		}
	}
	return &genai.GenerateContentConfig{SafetySettings: settings}
}

func interpret(resp *genai.GenerateContentResponse, err error) flora.Report {
	if err != nil {
		slog.Error("Report generation failed", "error", err)
		return failure(flora.FailureTransport,
			"An exception occurred during the API call. **Details:** "+err.Error())
	}

	if resp != nil {
		if text := resp.Text(); strings.TrimSpace(text) != "" {
			return flora.Report{Text: text}
		}
		if pf := resp.PromptFeedback; pf != nil && pf.BlockReason != "" {
			slog.Warn("Report request was blocked", "reason", pf.BlockReason)
			return failure(flora.FailureBlocked, fmt.Sprintf(
				"The request was blocked by the API's safety filters "+
					"(Reason: **%s**). Try reducing `max_species`.",
				pf.BlockReason,
			))
		}
	}

	slog.Warn("Report generator returned an empty response")
	return failure(flora.FailureEmpty,
		"The AI returned an empty response. This might be a temporary issue.")
}

func failure(reason flora.FailureReason, details string) flora.Report {
	return flora.Report{
		Text:   "**Gemini Analysis Error:** " + details,
		Failed: true,
		Reason: reason,
	}
}
