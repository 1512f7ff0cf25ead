package config

type Config struct {
	App     AppConfig     `json:"app"`
	Clients ClientsConfig `json:"clients"`
}

type AppConfig struct {
	Port string `env:"APP_PORT" env-default:"8080"`
}

type ClientsConfig struct {
	GitHub GitHubConfig `json:"github"`
}

// GitHubConfig pins the single shared remote resource: one file at
// (owner, repo, path) on one branch.
type GitHubConfig struct {
	Token      string `env:"GITHUB_TOKEN"`
	Owner      string `env:"GITHUB_OWNER" env-default:"VeganSindhu"`
	Repo       string `env:"GITHUB_REPO" env-default:"admin_upload"`
	Branch     string `env:"GITHUB_BRANCH" env-default:"main"`
	TargetPath string `env:"GITHUB_TARGET_PATH" env-default:"processed_pivot.csv"`
	APIBase    string `env:"GITHUB_API_BASE" env-default:"https://api.github.com"`
	RawHost    string `env:"GITHUB_RAW_HOST" env-default:"raw.githubusercontent.com"`
}
