package hubsoft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/oncabito/sentinela/internal/domain/ticket"
	"github.com/oncabito/sentinela/internal/shared/biztime"
	sharedConfig "github.com/oncabito/sentinela/internal/shared/config"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

const (
	tokenPath        = "/oauth/token"
	serviceOrderPath = "/api/v1/integracao/ordem_servico"
	// Maximum response body size accepted from the ERP (256KB)
	maxResponseSize = 256 << 10
	// Renew the access token this long before it actually expires
	tokenRenewalMargin = 60 * time.Second
)

// Client talks to the HubSoft ERP over its REST API using OAuth2 client
// credentials. Access tokens are cached until shortly before expiry.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	logger       logger.Interface

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a HubSoft API client from configuration.
func NewClient(cfg *sharedConfig.HubSoftConfig, logger logger.Interface) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		baseURL:      cfg.BaseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		logger:       logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type serviceOrderRequest struct {
	ClientReference string `json:"referencia_cliente"`
	Protocol        string `json:"protocolo"`
	Type            string `json:"tipo"`
	Urgency         string `json:"urgencia"`
	Description     string `json:"descricao"`
}

type serviceOrderResponse struct {
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
	Order   struct {
		ID string `json:"id_ordem_servico"`
	} `json:"ordem_servico"`
}

// CreateServiceOrder opens a service order in HubSoft for the given ticket
// and returns the external order ID.
func (c *Client) CreateServiceOrder(ctx context.Context, t *ticket.Ticket) (string, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to authenticate with hubsoft: %w", err)
	}

	payload := serviceOrderRequest{
		ClientReference: fmt.Sprintf("telegram:%d", t.TelegramUserID()),
		Protocol:        t.Protocol(),
		Type:            t.Category().String(),
		Urgency:         t.Urgency().String(),
		Description:     serviceOrderDescription(t),
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal service order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+serviceOrderPath, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call hubsoft: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read hubsoft response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Token revoked server-side; drop the cache so the next sweep re-authenticates
		c.mu.Lock()
		c.accessToken = ""
		c.mu.Unlock()
		return "", fmt.Errorf("hubsoft rejected the access token")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("hubsoft returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var result serviceOrderResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode hubsoft response: %w", err)
	}

	if result.Order.ID == "" {
		return "", fmt.Errorf("hubsoft response missing order ID: %s", truncate(result.Message, 200))
	}

	c.logger.Infow("hubsoft service order created",
		"protocol", t.Protocol(),
		"order_id", result.Order.ID,
	)
	return result.Order.ID, nil
}

// ensureToken returns a valid access token, fetching a new one when the
// cached token is missing or close to expiry.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := biztime.NowUTC()
	if c.accessToken != "" && now.Before(c.tokenExpiry.Add(-tokenRenewalMargin)) {
		return c.accessToken, nil
	}

	payload := map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
	}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var result tokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	c.accessToken = result.AccessToken
	c.tokenExpiry = now.Add(time.Duration(result.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// serviceOrderDescription flattens the ticket into the free-text field the
// ERP technicians read.
func serviceOrderDescription(t *ticket.Ticket) string {
	game := t.Game().Label()
	return fmt.Sprintf("[%s] Jogo: %s | Quando: %s\n\n%s",
		t.Category().Label(), game, t.Timing().Label(), t.Description())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
