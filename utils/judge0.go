package utils

import (
	"codelearn/config"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Judge0Submission is the payload for a synchronous code execution request.
type Judge0Submission struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin,omitempty"`
}

// Judge0Result is the relevant subset of a finished submission.
type Judge0Result struct {
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	CompileOutput string `json:"compile_output"`
	Message       string `json:"message"`
	Time          string `json:"time"`
	Memory        int    `json:"memory"`
	Status        struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
}

// RunJudge0 executes code through the Judge0 API and waits for the verdict
// in a single round trip (wait=true, no polling).
func RunJudge0(sub Judge0Submission) (*Judge0Result, error) {
	result := new(Judge0Result)

	client := resty.New().SetTimeout(60 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("x-rapidapi-host", rapidApiHost(config.AppConfig.Judge0ApiURL)).
		SetHeader("x-rapidapi-key", config.AppConfig.Judge0ApiKey).
		SetQueryParams(map[string]string{
			"base64_encoded": "false",
			"wait":           "true",
		}).
		SetBody(sub).
		SetResult(result).
		Post(config.AppConfig.Judge0ApiURL + "/submissions")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("judge0 API error: status %d: %s", resp.StatusCode(), resp.String())
	}

	return result, nil
}

// rapidApiHost extracts the bare host for the x-rapidapi-host header.
func rapidApiHost(url string) string {
	host := strings.TrimPrefix(url, "https://")
	host = strings.TrimPrefix(host, "http://")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	return host
}
