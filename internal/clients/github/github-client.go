package github_client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/vegansindhu/admin-upload/domain/app"
	"github.com/vegansindhu/admin-upload/internal/config"

	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"
)

const (
	apiVersion           = "2022-11-28"
	userAgent            = "admin-upload-script"
	defaultCommitMessage = "Admin: update processed pivot"
)

type ErrorKind string

const (
	ErrorKindRemoteRead ErrorKind = "remote_read"
	ErrorKindAuth       ErrorKind = "authentication"
	ErrorKindForbidden  ErrorKind = "forbidden"
	ErrorKindConflict   ErrorKind = "conflict"
	ErrorKindOther      ErrorKind = "other"
)

// APIError carries the failure classification and the raw response body
// so the admin page can show both the hint and the diagnosis material.
type APIError struct {
	StatusCode int
	Kind       ErrorKind
	Hint       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (API error %d): %s", e.Hint, e.StatusCode, e.Body)
}

type getContentResponse struct {
	SHA string `json:"sha"`
}

type putContentRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

type putContentResponse struct {
	Content struct {
		HTMLURL string `json:"html_url"`
	} `json:"content"`
}

type GithubClient struct {
	cfg    config.GitHubConfig
	client *http.Client
	log    *slog.Logger
}

var _ app.Publisher = &GithubClient{}

func New(cfg *config.Config, log *slog.Logger) (*GithubClient, error) {
	if cfg.Clients.GitHub.Token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is not set; the publish client cannot start without it")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	return &GithubClient{
		cfg:    cfg.Clients.GitHub,
		client: client,
		log:    log,
	}, nil
}

func (this *GithubClient) Publish(ctx nova_ctx.Ctx, content []byte, message string) (*app.PublishResult, errs.Error) {
	res, e := this.publish(content, message)
	if e != nil {
		return nil, errs.WrapAppError(e, &errs.ErrorOpts{})
	}
	return res, nil
}

// publish runs the read-then-conditional-write protocol. It is not a
// transaction: the remote API alone enforces that the sha observed in
// the fetch still matches at write time, and a rejection is surfaced,
// never retried.
func (this *GithubClient) publish(content []byte, message string) (*app.PublishResult, error) {
	sha, e := this.fetchSHA()
	if e != nil {
		return nil, e
	}

	if message == "" {
		message = defaultCommitMessage
	}

	payload := putContentRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  this.cfg.Branch,
		SHA:     sha,
	}

	js, e := json.Marshal(payload)
	if e != nil {
		return nil, e
	}

	req, e := http.NewRequest("PUT", this.contentsURL(), bytes.NewBuffer(js))
	if e != nil {
		return nil, e
	}
	this.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	res, e := this.client.Do(req)
	if e != nil {
		return nil, e
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode != 200 && res.StatusCode != 201 {
		apiErr := classifyWriteError(res.StatusCode, string(body))
		this.log.Error("github write failed", "status", res.StatusCode, "kind", string(apiErr.Kind))
		return nil, apiErr
	}

	var parsed putContentResponse
	if e := json.Unmarshal(body, &parsed); e != nil {
		return nil, e
	}

	this.log.Info("pivot published",
		"status", res.StatusCode,
		"html_url", parsed.Content.HTMLURL)

	return &app.PublishResult{
		HTMLURL: parsed.Content.HTMLURL,
		RawURL:  this.rawURL(),
		Created: res.StatusCode == 201,
	}, nil
}

// fetchSHA reads the current content hash of the target file on the
// target branch. A 404 means first publish and is not an error.
func (this *GithubClient) fetchSHA() (string, error) {
	u, e := url.Parse(this.contentsURL())
	if e != nil {
		return "", e
	}
	q := u.Query()
	q.Set("ref", this.cfg.Branch)
	u.RawQuery = q.Encode()

	req, e := http.NewRequest("GET", u.String(), nil)
	if e != nil {
		return "", e
	}
	this.setHeaders(req)

	res, e := this.client.Do(req)
	if e != nil {
		return "", e
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case 200:
		var parsed getContentResponse
		if e := json.NewDecoder(res.Body).Decode(&parsed); e != nil {
			return "", e
		}
		return parsed.SHA, nil
	case 404:
		return "", nil
	default:
		body, _ := io.ReadAll(res.Body)
		return "", &APIError{
			StatusCode: res.StatusCode,
			Kind:       ErrorKindRemoteRead,
			Hint:       "could not read the current file state; publish aborted before writing",
			Body:       string(body),
		}
	}
}

func (this *GithubClient) contentsURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", this.cfg.APIBase, this.cfg.Owner, this.cfg.Repo, this.cfg.TargetPath)
}

// rawURL is deterministic from owner/repo/branch/path; no API
// round-trip is needed.
func (this *GithubClient) rawURL() string {
	return fmt.Sprintf("https://%s/%s/%s/%s/%s", this.cfg.RawHost, this.cfg.Owner, this.cfg.Repo, this.cfg.Branch, this.cfg.TargetPath)
}

func (this *GithubClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+this.cfg.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
}

func classifyWriteError(status int, body string) *APIError {
	kind := ErrorKindOther
	hint := "GitHub rejected the write; see the response body"
	switch status {
	case 401:
		kind = ErrorKindAuth
		hint = "authentication failed; check that the token is valid and has contents access"
	case 403:
		kind = ErrorKindForbidden
		hint = "the token lacks permission to write to this repository"
	case 409, 422:
		kind = ErrorKindConflict
		hint = "the file sha is likely stale or the branch/path is wrong"
	}
	return &APIError{StatusCode: status, Kind: kind, Hint: hint, Body: body}
}
