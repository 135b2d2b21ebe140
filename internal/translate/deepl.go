package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"lingopipe/internal/config"
)

type deepLTranslator struct {
	httpClient *http.Client
	baseURL    string
	authKey    string
	targetLang string
}

func newDeepL(cfg config.Translator) (Translator, error) {
	if cfg.DeepL.AuthKey == "" {
		return nil, errors.New("translator.deepl.auth_key is required (set DEEPL_AUTH_KEY)")
	}
	return &deepLTranslator{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(cfg.DeepL.BaseURL, "/"),
		authKey:    cfg.DeepL.AuthKey,
		targetLang: deepLTargetCode(cfg.TargetLanguage),
	}, nil
}

// deepLTargetCode renders the target language in DeepL's uppercase base
// form, e.g. "RU" for "ru" or "ru-RU".
func deepLTargetCode(target string) string {
	tag, err := language.Parse(target)
	if err != nil {
		return strings.ToUpper(target)
	}
	base, _ := tag.Base()
	return strings.ToUpper(base.String())
}

type deepLResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

func (t *deepLTranslator) Translate(ctx context.Context, text string) (string, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("target_lang", t.targetLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("deepl request: %w", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+t.authKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepl translate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("deepl read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepl translate: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload deepLResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("deepl parse response: %w", err)
	}
	if len(payload.Translations) == 0 {
		return "", errors.New("deepl translate: no translations in response")
	}
	return payload.Translations[0].Text, nil
}
