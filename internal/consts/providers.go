package consts

const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// SupportedProviders 按展示顺序排列
var SupportedProviders = []string{ProviderGoogle, ProviderGitHub}
