package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lingopipe/internal/config"
)

type laraTranslator struct {
	httpClient      *http.Client
	baseURL         string
	accessKeyID     string
	accessKeySecret string
	targetLang      string
}

func newLara(cfg config.Translator) (Translator, error) {
	if cfg.Lara.AccessKeyID == "" || cfg.Lara.AccessKeySecret == "" {
		return nil, errors.New("translator.lara credentials are required (set LARA_API_ID and LARA_API_SECRET)")
	}
	return &laraTranslator{
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		baseURL:         strings.TrimRight(cfg.Lara.BaseURL, "/"),
		accessKeyID:     cfg.Lara.AccessKeyID,
		accessKeySecret: cfg.Lara.AccessKeySecret,
		targetLang:      cfg.TargetLanguage,
	}, nil
}

type laraRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type laraResponse struct {
	Translation string `json:"translation"`
}

func (t *laraTranslator) Translate(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(laraRequest{Text: text, Target: t.targetLang})
	if err != nil {
		return "", fmt.Errorf("lara encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("lara request: %w", err)
	}
	req.SetBasicAuth(t.accessKeyID, t.accessKeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lara translate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("lara read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lara translate: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded laraResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("lara parse response: %w", err)
	}
	return decoded.Translation, nil
}
