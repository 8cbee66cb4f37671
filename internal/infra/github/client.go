// Package github implements the pull request source on top of the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/prhealth"
	"github.com/mark47B/pr-health-dashboard/internal/domain/repository"
)

const (
	DefaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"
	perPage        = 100
)

var _ repository.PullRequestSource = (*Client)(nil)

type Options struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	MaxPages int
}

type Client struct {
	baseURL  string
	token    string
	maxPages int
	http     *http.Client
	log      *zap.SugaredLogger
}

func NewClient(opts Options, log *zap.SugaredLogger) *Client {
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = 1
	}
	return &Client{
		baseURL:  baseURL,
		token:    opts.Token,
		maxPages: maxPages,
		http:     &http.Client{Timeout: opts.Timeout},
		log:      log.Named("github"),
	}
}

type pullRequest struct {
	ID        int64  `json:"id"`
	Number    int    `json:"number"`
	Title     string `json:"title"`
	State     string `json:"state"`
	HTMLURL   string `json:"html_url"`
	CreatedAt string `json:"created_at"`
	User      struct {
		Login string `json:"login"`
	} `json:"user"`
	Head struct {
		Ref string `json:"ref"`
	} `json:"head"`
	Base struct {
		Ref string `json:"ref"`
	} `json:"base"`
}

// ListOpenPullRequests walks the pages of GET /repos/{owner}/{repo}/pulls?state=open.
// Any failed page fails the whole listing.
func (c *Client) ListOpenPullRequests(ctx context.Context, owner, repo string) ([]entity.RawPullRequest, error) {
	var result []entity.RawPullRequest

	for page := 1; page <= c.maxPages; page++ {
		batch, err := c.listPage(ctx, owner, repo, page)
		if err != nil {
			return nil, err
		}
		for _, pr := range batch {
			result = append(result, entity.RawPullRequest{
				ID:           pr.ID,
				Number:       pr.Number,
				Title:        pr.Title,
				Author:       pr.User.Login,
				State:        pr.State,
				SourceBranch: pr.Head.Ref,
				TargetBranch: pr.Base.Ref,
				CreatedAt:    pr.CreatedAt,
				URL:          pr.HTMLURL,
			})
		}
		if len(batch) < perPage {
			return result, nil
		}
	}

	c.log.Warnw("pull request listing truncated", "owner", owner, "repo", repo, "max_pages", c.maxPages)
	return result, nil
}

func (c *Client) listPage(ctx context.Context, owner, repo string, page int) ([]pullRequest, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/pulls", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	query := url.Values{}
	query.Set("state", "open")
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", prhealth.ErrSourceUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warnw("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Errorw("github request failed",
			"owner", owner,
			"repo", repo,
			"status", resp.StatusCode,
			"body", string(body),
		)
		return nil, fmt.Errorf("%w: %s/%s: status %d", prhealth.ErrSourceUnavailable, owner, repo, resp.StatusCode)
	}

	var batch []pullRequest
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", prhealth.ErrSourceUnavailable, err)
	}
	return batch, nil
}
