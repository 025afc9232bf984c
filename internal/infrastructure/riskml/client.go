package riskml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
)

// Verificar en tiempo de compilación que Client implementa RiskScorer.
var _ ports.RiskScorer = (*Client)(nil)

const (
	studentRiskPath  = "/api/analyze/student-risk"
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 256 * 1024
)

// Client adaptador HTTP hacia el servicio de riesgo académico. Sin reintentos.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. timeout <= 0 usa 15 s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// AnalyzeStudentRisk hace POST del payload y devuelve la respuesta tal cual.
// Error de transporte, status distinto de 2xx o cuerpo ilegible devuelven error.
func (c *Client) AnalyzeStudentRisk(ctx context.Context, payload dto.RiskAnalysisRequest) (*dto.RiskAnalysisResult, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("riesgo: ML_SERVICE_URL no configurado")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("riesgo: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+studentRiskPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("riesgo: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("riesgo: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("riesgo: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("riesgo: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("riesgo: HTTP %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var out dto.RiskAnalysisResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("riesgo: deserializar respuesta: %w", err)
	}
	return &out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
