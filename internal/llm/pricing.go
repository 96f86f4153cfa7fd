package llm

// ModelCost is list pricing for one model, in USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost converts token counts into USD.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns pricing for a model ID, or nil when the model is not
// in the table. `oscesim llm stats` prints "?" for unknown models rather
// than guessing.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// Pricing snapshot from models.dev, February 2026. Covers the models the
// provider aliases resolve to plus the IDs likely to show up via direct
// configuration or OpenRouter.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-3-5-haiku-latest":    {InputPerMTok: 0.8, OutputPerMTok: 4},
	"claude-3-5-haiku-20241022":  {InputPerMTok: 0.8, OutputPerMTok: 4},
	"claude-3-7-sonnet-latest":   {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-haiku-4-5":           {InputPerMTok: 1, OutputPerMTok: 5},
	"claude-haiku-4-5-20251001":  {InputPerMTok: 1, OutputPerMTok: 5},
	"claude-sonnet-4-0":          {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-sonnet-4-20250514":   {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-sonnet-4-5":          {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-sonnet-4-5-20250929": {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-opus-4-1":            {InputPerMTok: 15, OutputPerMTok: 75},
	"claude-opus-4-5":            {InputPerMTok: 5, OutputPerMTok: 25},

	// OpenAI
	"gpt-4o":       {InputPerMTok: 2.5, OutputPerMTok: 10},
	"gpt-4o-mini":  {InputPerMTok: 0.15, OutputPerMTok: 0.6},
	"gpt-4.1":      {InputPerMTok: 2, OutputPerMTok: 8},
	"gpt-4.1-mini": {InputPerMTok: 0.4, OutputPerMTok: 1.6},
	"gpt-4.1-nano": {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gpt-5":        {InputPerMTok: 1.25, OutputPerMTok: 10},
	"gpt-5-mini":   {InputPerMTok: 0.25, OutputPerMTok: 2},
	"gpt-5-nano":   {InputPerMTok: 0.05, OutputPerMTok: 0.4},
	"o3":           {InputPerMTok: 2, OutputPerMTok: 8},
	"o4-mini":      {InputPerMTok: 1.1, OutputPerMTok: 4.4},

	// Google
	"gemini-1.5-flash":         {InputPerMTok: 0.075, OutputPerMTok: 0.3},
	"gemini-1.5-pro":           {InputPerMTok: 1.25, OutputPerMTok: 5},
	"gemini-2.0-flash":         {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.0-flash-lite":    {InputPerMTok: 0.075, OutputPerMTok: 0.3},
	"gemini-2.5-flash":         {InputPerMTok: 0.3, OutputPerMTok: 2.5},
	"gemini-2.5-flash-lite":    {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.5-pro":           {InputPerMTok: 1.25, OutputPerMTok: 10},
	"gemini-flash-latest":      {InputPerMTok: 0.3, OutputPerMTok: 2.5},
	"gemini-flash-lite-latest": {InputPerMTok: 0.1, OutputPerMTok: 0.4},
}
