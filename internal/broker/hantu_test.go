package broker

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, rtCd, msgCd string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth2/tokenP":
			json.NewEncoder(w).Encode(map[string]string{"access_token": "test-token"})
		case "/uapi/overseas-stock/v1/trading/order":
			if got := r.Header.Get("authorization"); got != "Bearer test-token" {
				t.Errorf("missing bearer token, got %q", got)
			}
			if got := r.Header.Get("tr_id"); got != hantuBuyTrID {
				t.Errorf("wrong tr_id: %q", got)
			}
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["PDNO"] != "TQQQ" {
				t.Errorf("wrong symbol: %q", body["PDNO"])
			}
			if body["ORD_QTY"] != "3" {
				t.Errorf("wrong quantity: %q", body["ORD_QTY"])
			}
			json.NewEncoder(w).Encode(hantuOrderResponse{RtCd: rtCd, MsgCd: msgCd, Msg1: "msg"})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
}

func TestPlaceMarketBuy_Success(t *testing.T) {
	srv := newTestServer(t, "0", "APBK0013")
	defer srv.Close()

	h := NewHantuClient(srv.URL, "key", "secret", "12345678")
	status, err := h.PlaceMarketBuy("TQQQ", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "FILLED" {
		t.Errorf("expected FILLED, got %q", status)
	}
}

func TestPlaceMarketBuy_Rejected(t *testing.T) {
	srv := newTestServer(t, "1", "APBK0918")
	defer srv.Close()

	h := NewHantuClient(srv.URL, "key", "secret", "12345678")
	status, err := h.PlaceMarketBuy("TQQQ", 3)
	if err == nil {
		t.Fatal("expected rejection error")
	}
	if status != "APBK0918" {
		t.Errorf("expected brokerage status code, got %q", status)
	}
}

func TestPlaceMarketBuy_InvalidQuantity(t *testing.T) {
	h := NewHantuClient("http://unused", "key", "secret", "12345678")
	if _, err := h.PlaceMarketBuy("TQQQ", 0); err == nil {
		t.Fatal("expected error for zero quantity")
	}
}

func TestTokenReused(t *testing.T) {
	tokenCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth2/tokenP" {
			tokenCalls++
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok"})
			return
		}
		json.NewEncoder(w).Encode(hantuOrderResponse{RtCd: "0"})
	}))
	defer srv.Close()

	h := NewHantuClient(srv.URL, "key", "secret", "12345678")
	h.PlaceMarketBuy("AAPL", 1)
	h.PlaceMarketBuy("AAPL", 1)
	if tokenCalls != 1 {
		t.Errorf("expected one token request across orders, got %d", tokenCalls)
	}
}
