package users

import (
	"net/url"
	"strconv"
	"time"
)

const (
	perPageQueryParameterConstant   = "per_page"
	pageQueryParameterConstant      = "page"
	sinceQueryParameterConstant     = "since"
	sortQueryParameterConstant      = "sort"
	directionQueryParameterConstant = "direction"
)

// User is a GitHub account as returned by the users endpoints.
type User struct {
	Login           string     `json:"login" yaml:"login"`
	ID              int64      `json:"id" yaml:"id"`
	NodeID          string     `json:"node_id,omitempty" yaml:"node_id,omitempty"`
	Type            string     `json:"type,omitempty" yaml:"type,omitempty"`
	SiteAdmin       bool       `json:"site_admin" yaml:"site_admin"`
	Name            string     `json:"name,omitempty" yaml:"name,omitempty"`
	Company         string     `json:"company,omitempty" yaml:"company,omitempty"`
	Blog            string     `json:"blog,omitempty" yaml:"blog,omitempty"`
	Location        string     `json:"location,omitempty" yaml:"location,omitempty"`
	Email           string     `json:"email,omitempty" yaml:"email,omitempty"`
	Hireable        *bool      `json:"hireable,omitempty" yaml:"hireable,omitempty"`
	Bio             string     `json:"bio,omitempty" yaml:"bio,omitempty"`
	TwitterUsername string     `json:"twitter_username,omitempty" yaml:"twitter_username,omitempty"`
	PublicRepos     int        `json:"public_repos,omitempty" yaml:"public_repos,omitempty"`
	PublicGists     int        `json:"public_gists,omitempty" yaml:"public_gists,omitempty"`
	Followers       int        `json:"followers,omitempty" yaml:"followers,omitempty"`
	Following       int        `json:"following,omitempty" yaml:"following,omitempty"`
	AvatarURL       string     `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	HTMLURL         string     `json:"html_url,omitempty" yaml:"html_url,omitempty"`
	URL             string     `json:"url,omitempty" yaml:"url,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Key is a public SSH key attached to an account.
type Key struct {
	ID        int64      `json:"id" yaml:"id"`
	Key       string     `json:"key" yaml:"key"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	URL       string     `json:"url,omitempty" yaml:"url,omitempty"`
	Verified  bool       `json:"verified,omitempty" yaml:"verified,omitempty"`
	ReadOnly  bool       `json:"read_only,omitempty" yaml:"read_only,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Email is an address registered with the authenticated account.
type Email struct {
	Email      string `json:"email" yaml:"email"`
	Primary    bool   `json:"primary" yaml:"primary"`
	Verified   bool   `json:"verified" yaml:"verified"`
	Visibility string `json:"visibility,omitempty" yaml:"visibility,omitempty"`
}

// RepositoryOwner identifies the account owning a repository.
type RepositoryOwner struct {
	Login string `json:"login" yaml:"login"`
	ID    int64  `json:"id" yaml:"id"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Repository is the repository summary returned by starred and subscription listings.
type Repository struct {
	ID              int64           `json:"id" yaml:"id"`
	NodeID          string          `json:"node_id,omitempty" yaml:"node_id,omitempty"`
	Name            string          `json:"name" yaml:"name"`
	FullName        string          `json:"full_name" yaml:"full_name"`
	Owner           RepositoryOwner `json:"owner" yaml:"owner"`
	Private         bool            `json:"private" yaml:"private"`
	Fork            bool            `json:"fork" yaml:"fork"`
	Description     string          `json:"description,omitempty" yaml:"description,omitempty"`
	Language        string          `json:"language,omitempty" yaml:"language,omitempty"`
	DefaultBranch   string          `json:"default_branch,omitempty" yaml:"default_branch,omitempty"`
	StargazersCount int             `json:"stargazers_count,omitempty" yaml:"stargazers_count,omitempty"`
	WatchersCount   int             `json:"watchers_count,omitempty" yaml:"watchers_count,omitempty"`
	ForksCount      int             `json:"forks_count,omitempty" yaml:"forks_count,omitempty"`
	HTMLURL         string          `json:"html_url,omitempty" yaml:"html_url,omitempty"`
	PushedAt        *time.Time      `json:"pushed_at,omitempty" yaml:"pushed_at,omitempty"`
	CreatedAt       *time.Time      `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// AccessToken is the result of exchanging an OAuth authorization code.
type AccessToken struct {
	AccessToken      string `json:"access_token" yaml:"access_token"`
	TokenType        string `json:"token_type,omitempty" yaml:"token_type,omitempty"`
	Scope            string `json:"scope,omitempty" yaml:"scope,omitempty"`
	Error            string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty" yaml:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty" yaml:"error_uri,omitempty"`
}

// ListOptions controls the page size and starting page of paginated listings.
type ListOptions struct {
	PerPage Optional[int]
	Page    Optional[int]
}

// AllUsersOptions configures AllUsers.
type AllUsersOptions struct {
	Since Optional[int64]
	ListOptions
}

// StarredOptions configures Starred.
type StarredOptions struct {
	Sort      Optional[string]
	Direction Optional[string]
	ListOptions
}

// UserUpdate lists the profile fields to change; absent fields are left untouched.
type UserUpdate struct {
	Name            Optional[string]
	Email           Optional[string]
	Blog            Optional[string]
	Company         Optional[string]
	Location        Optional[string]
	Bio             Optional[string]
	TwitterUsername Optional[string]
	Hireable        Optional[bool]
}

// KeyUpdate lists the key fields to change.
type KeyUpdate struct {
	Title Optional[string]
	Key   Optional[string]
}

// TokenExchangeOptions carries optional OAuth exchange parameters.
type TokenExchangeOptions struct {
	RedirectURI Optional[string]
	State       Optional[string]
}

// BasicCredentials is a login and password pair checked by ValidateCredentials.
type BasicCredentials struct {
	Login    string
	Password string
}

func (options ListOptions) query() url.Values {
	query := url.Values{}
	if perPage, present := options.PerPage.Get(); present && perPage > 0 {
		query.Set(perPageQueryParameterConstant, strconv.Itoa(perPage))
	}
	if page, present := options.Page.Get(); present && page > 0 {
		query.Set(pageQueryParameterConstant, strconv.Itoa(page))
	}
	return query
}

func (options AllUsersOptions) query() url.Values {
	query := options.ListOptions.query()
	if since, present := options.Since.Get(); present {
		query.Set(sinceQueryParameterConstant, strconv.FormatInt(since, 10))
	}
	return query
}

func (options StarredOptions) query() url.Values {
	query := options.ListOptions.query()
	if sortValue, present := options.Sort.Get(); present && len(sortValue) > 0 {
		query.Set(sortQueryParameterConstant, sortValue)
	}
	if direction, present := options.Direction.Get(); present && len(direction) > 0 {
		query.Set(directionQueryParameterConstant, direction)
	}
	return query
}

func (update UserUpdate) payload() map[string]any {
	payload := make(map[string]any)
	setPresent(payload, "name", update.Name)
	setPresent(payload, "email", update.Email)
	setPresent(payload, "blog", update.Blog)
	setPresent(payload, "company", update.Company)
	setPresent(payload, "location", update.Location)
	setPresent(payload, "bio", update.Bio)
	setPresent(payload, "twitter_username", update.TwitterUsername)
	setPresent(payload, "hireable", update.Hireable)
	return payload
}

func (update KeyUpdate) payload() map[string]any {
	payload := make(map[string]any)
	setPresent(payload, "title", update.Title)
	setPresent(payload, "key", update.Key)
	return payload
}

func setPresent[T any](payload map[string]any, fieldName string, optional Optional[T]) {
	if value, present := optional.Get(); present {
		payload[fieldName] = value
	}
}
