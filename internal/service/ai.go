package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"skin-diary/internal/model"
)

// Sampling temperature per call kind: structured insights need factual
// grounding, drill-down must stay close to the data, the daily tip is
// generic wellness content.
const (
	tempInsights  = 0.5
	tempDrillDown = 0.3
	tempDailyTip  = 0.8
)

const insightSystem = `You are a helpful wellness assistant analyzing a user's food and skin diary. Your goal is to find potential connections between their logged food, supplements, water intake, timing, and their skin's condition. You must provide clear, concise, and encouraging insights based ONLY on the data provided. Your response MUST be a valid JSON object with exactly these string keys: "foodCorrelations", "supplementCorrelations", "timingAnalysis", "waterAnalysis", "summary". For keys where there isn't enough data, return an empty string. IMPORTANT: DO NOT provide medical advice. Start your summary with encouragement. Frame your analysis as observations of potential patterns, not definitive causes. Base your analysis strictly on the log data.`

const drillDownSystem = `You are a helpful wellness assistant analyzing a user's food and skin diary. Answer the user's specific follow-up question based only on the provided logs. Be concise. Do not restate the question in your answer. Do not provide medical advice. Frame your analysis as observations of potential patterns, not definitive causes. Use markdown for formatting.`

const dailyTipSystem = `You are a wellness expert providing a single, concise, actionable daily tip for improving skin health from the inside out (e.g., related to diet, hydration, lifestyle). The tip should be encouraging and easy to understand. Do not include any intro or outro text, just the tip itself. The tip should be a single sentence, or two at most.`

// fallbackSummary replaces the summary when the model's structured reply
// doesn't decode cleanly. Partial sections are still returned.
const fallbackSummary = "We couldn't read every part of the analysis this time, but the sections that came through are shown here. Keep logging — more entries make the patterns clearer!"

type AIService struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewAIService(baseURL, apiKey, model string, client *http.Client) *AIService {
	if client == nil {
		client = &http.Client{}
	}
	return &AIService{baseURL: baseURL, apiKey: apiKey, model: model, client: client}
}

// transmitEntry is a LogEntry without id and photo. Neither carries
// analytical value and the photo payload would dominate the prompt.
type transmitEntry struct {
	Date         string `json:"date"`
	Food         string `json:"food"`
	Water        int    `json:"water"`
	SkinReaction string `json:"skinReaction"`
	SkinRating   int    `json:"skinRating"`
	Supplements  string `json:"supplements,omitempty"`
	IntakeTime   string `json:"intakeTime,omitempty"`
	ReactionTime string `json:"reactionTime,omitempty"`
}

func serializeLogs(logs []model.LogEntry) string {
	stripped := make([]transmitEntry, len(logs))
	for i, l := range logs {
		stripped[i] = transmitEntry{
			Date: l.Date, Food: l.Food, Water: l.Water,
			SkinReaction: l.SkinReaction, SkinRating: l.SkinRating,
			Supplements: l.Supplements, IntakeTime: l.IntakeTime, ReactionTime: l.ReactionTime,
		}
	}
	b, _ := json.MarshalIndent(stripped, "", "  ")
	return string(b)
}

func (s *AIService) generate(ctx context.Context, system, prompt string, temperature float64, jsonMode bool) (string, error) {
	if s.apiKey == "" {
		return "", misconfigured("generation service API key is not configured")
	}

	genCfg := map[string]interface{}{"temperature": temperature}
	if jsonMode {
		genCfg["responseMimeType"] = "application/json"
	}
	body := map[string]interface{}{
		"system_instruction": map[string]interface{}{
			"parts": []map[string]string{{"text": system}},
		},
		"contents": []map[string]interface{}{
			{"role": "user", "parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": genCfg,
	}
	payload, _ := json.Marshal(body)

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return "", upstreamFailure("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", upstreamFailure("generation call failed", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		msg := upstreamMessage(data)
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "", misconfigured("generation service rejected the API key: " + msg)
		case http.StatusBadRequest:
			return "", invalidInput("generation service rejected the request: " + msg)
		default:
			return "", upstreamFailure(fmt.Sprintf("generation service returned status %d: %s", resp.StatusCode, msg), nil)
		}
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", upstreamFailure("decode generation response", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", upstreamFailure("generation service returned no content", nil)
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// upstreamMessage pulls the human-readable message out of an error body,
// falling back to the raw payload.
func upstreamMessage(data []byte) string {
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	msg := strings.TrimSpace(string(data))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}

// RequestInsights runs a full pattern analysis over the log set. At
// least two entries are required; fewer cannot support pattern-finding
// and the call fails before any network I/O. A reply that parses but is
// missing sections degrades gracefully: parsed sections are kept and a
// fallback summary is substituted.
func (s *AIService) RequestInsights(ctx context.Context, logs []model.LogEntry) (*model.InsightSections, error) {
	if len(logs) < 2 {
		return nil, insufficientData("at least two log entries are required for an analysis")
	}

	prompt := fmt.Sprintf("Here are the user's logs:\n%s\n\nPlease analyze these logs and provide insights.", serializeLogs(logs))
	text, err := s.generate(ctx, insightSystem, prompt, tempInsights, true)
	if err != nil {
		return nil, err
	}

	return parseInsightSections(text), nil
}

// parseInsightSections decodes the model's JSON reply. Pointer fields
// distinguish a missing key from a legitimately empty section.
func parseInsightSections(text string) *model.InsightSections {
	var raw struct {
		FoodCorrelations       *string `json:"foodCorrelations"`
		SupplementCorrelations *string `json:"supplementCorrelations"`
		TimingAnalysis         *string `json:"timingAnalysis"`
		WaterAnalysis          *string `json:"waterAnalysis"`
		Summary                *string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &raw); err != nil {
		return &model.InsightSections{Summary: fallbackSummary}
	}

	out := &model.InsightSections{
		FoodCorrelations:       deref(raw.FoodCorrelations),
		SupplementCorrelations: deref(raw.SupplementCorrelations),
		TimingAnalysis:         deref(raw.TimingAnalysis),
		WaterAnalysis:          deref(raw.WaterAnalysis),
	}
	if raw.Summary != nil {
		out.Summary = *raw.Summary
	} else {
		out.Summary = fallbackSummary
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// stripCodeFence removes a surrounding markdown fence (``` or ```json)
// that models sometimes wrap JSON replies in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// RequestDrillDown answers a free-text follow-up question against the
// logs. A single entry is enough — the question directs the analysis.
func (s *AIService) RequestDrillDown(ctx context.Context, logs []model.LogEntry, question string) (string, error) {
	if len(logs) == 0 {
		return "", insufficientData("at least one log entry is required to answer a question")
	}
	if strings.TrimSpace(question) == "" {
		return "", invalidInput("question must not be empty")
	}

	prompt := fmt.Sprintf("Here are the user's logs:\n%s\n\nPlease answer the following question based on these logs:\nQuestion: %q", serializeLogs(logs), question)
	return s.generate(ctx, drillDownSystem, prompt, tempDrillDown, false)
}

// RequestDailyTip fetches one short wellness tip. Stateless; day-level
// caching is the caller's concern.
func (s *AIService) RequestDailyTip(ctx context.Context) (string, error) {
	text, err := s.generate(ctx, dailyTipSystem, "Give me a skin health tip for today.", tempDailyTip, false)
	if err != nil {
		return "", err
	}
	tip := strings.TrimSpace(text)
	tip = strings.TrimPrefix(tip, `"`)
	tip = strings.TrimSuffix(tip, `"`)
	return tip, nil
}
