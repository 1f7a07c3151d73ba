package broker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// HantuClient implements Client against the Korea Investment &
// Securities open API (VTS paper-trading domain by default).
type HantuClient struct {
	BaseURL   string
	AppKey    string
	SecretKey string
	AccountNo string
	Exchange  string // e.g. NASD
	Client    *http.Client

	mu    sync.Mutex
	token string
}

// Paper-trading transaction ID for a US market buy.
const hantuBuyTrID = "VTTT1002U"

// NewHantuClient creates a broker client. An empty baseURL targets the
// paper-trading domain.
func NewHantuClient(baseURL, appKey, secretKey, accountNo string) *HantuClient {
	if baseURL == "" {
		baseURL = "https://openapivts.koreainvestment.com:29443"
	}
	return &HantuClient{
		BaseURL:   baseURL,
		AppKey:    appKey,
		SecretKey: secretKey,
		AccountNo: accountNo,
		Exchange:  "NASD",
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (h *HantuClient) Name() string { return "hantu" }

// ensureToken fetches the OAuth access token on first use.
func (h *HantuClient) ensureToken() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.token != "" {
		return h.token, nil
	}

	body, err := json.Marshal(map[string]string{
		"grant_type": "client_credentials",
		"appkey":     h.AppKey,
		"secretkey":  h.SecretKey,
	})
	if err != nil {
		return "", fmt.Errorf("marshal token request: %w", err)
	}

	resp, err := h.Client.Post(h.BaseURL+"/oauth2/tokenP", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token request: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("token request: empty access_token")
	}
	h.token = result.AccessToken
	return h.token, nil
}

// hantuOrderResponse is the common response envelope; rt_cd "0" means
// success.
type hantuOrderResponse struct {
	RtCd  string `json:"rt_cd"`
	MsgCd string `json:"msg_cd"`
	Msg1  string `json:"msg1"`
}

func (h *HantuClient) PlaceMarketBuy(symbol string, quantity int64) (string, error) {
	if quantity <= 0 {
		return "", fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	token, err := h.ensureToken()
	if err != nil {
		return "", err
	}

	orderBody, err := json.Marshal(map[string]string{
		"CANO":          h.AccountNo,
		"ACNT_PRDT_CD":  "01",
		"OVRS_EXCG_CD":  h.Exchange,
		"PDNO":          symbol,
		"ORD_QTY":       strconv.FormatInt(quantity, 10),
		"OVRS_ORD_UNPR": "0",
		"ORD_DVSN":      "00",
	})
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequest("POST", h.BaseURL+"/uapi/overseas-stock/v1/trading/order", bytes.NewReader(orderBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("authorization", "Bearer "+token)
	req.Header.Set("appkey", h.AppKey)
	req.Header.Set("appsecret", h.SecretKey)
	req.Header.Set("tr_id", hantuBuyTrID)
	req.Header.Set("custtype", "P")

	resp, err := h.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("submit order: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result hantuOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode order response: %w", err)
	}
	if result.RtCd != "0" {
		return result.MsgCd, fmt.Errorf("order rejected: %s %s", result.MsgCd, result.Msg1)
	}
	return "FILLED", nil
}
