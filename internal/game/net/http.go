package net

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/L1VER1337/block/internal/netcfg"
)

// initData is the raw Telegram WebApp init-data string for this run. The
// backend verifies it server-side on user creation; we just forward it.
var initData string

// SetInitData stores the init-data token attached to outgoing requests.
func SetInitData(raw string) {
	initData = strings.TrimSpace(raw)
}

func getBaseURL() string {
	return netcfg.APIBase
}

// GetJSON performs a GET request and decodes the JSON response
func GetJSON[T any](path string) (T, error) {
	var result T

	url := getBaseURL() + path
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return result, err
	}

	if initData != "" {
		req.Header.Set("X-Telegram-Init-Data", initData)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	return result, err
}

// PostJSON performs a POST request with JSON body and decodes the JSON response
func PostJSON[Req any, Res any](body Req, path string) (Res, error) {
	return sendJSON[Req, Res]("POST", body, path)
}

// PutJSON performs a PUT request with JSON body and decodes the JSON response
func PutJSON[Req any, Res any](body Req, path string) (Res, error) {
	return sendJSON[Req, Res]("PUT", body, path)
}

func sendJSON[Req any, Res any](method string, body Req, path string) (Res, error) {
	var result Res

	jsonData, err := json.Marshal(body)
	if err != nil {
		return result, err
	}

	url := getBaseURL() + path
	req, err := http.NewRequest(method, url, bytes.NewReader(jsonData))
	if err != nil {
		return result, err
	}

	req.Header.Set("Content-Type", "application/json")
	if initData != "" {
		req.Header.Set("X-Telegram-Init-Data", initData)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return result, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}

	err = json.Unmarshal(bodyBytes, &result)
	return result, err
}
