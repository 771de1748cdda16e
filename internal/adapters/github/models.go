package github

import "time"

// User is a partial GitHub user document with fields we use
type User struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
	HTMLURL     string    `json:"html_url"`
}

// Repo is a partial GitHub repository document
type Repo struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	FullName   string    `json:"full_name"`
	Owner      User      `json:"owner"`
	Private    bool      `json:"private"`
	Fork       bool      `json:"fork"`
	Language   string    `json:"language"`
	Stargazers int       `json:"stargazers_count"`
	ForksCount int       `json:"forks_count"`
	PushedAt   time.Time `json:"pushed_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	HTMLURL    string    `json:"html_url"`
}

// Commit is a partial GitHub commit document as returned by the
// list-commits endpoint. Stats are only present on single-commit reads,
// so additions and deletions default to zero
type Commit struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
	Commit  struct {
		Message string `json:"message"`
		Author  struct {
			Name  string    `json:"name"`
			Email string    `json:"email"`
			Date  time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Stats *struct {
		Additions int `json:"additions"`
		Deletions int `json:"deletions"`
	} `json:"stats,omitempty"`
}
