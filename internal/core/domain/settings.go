package domain

import (
	"fmt"
	"strings"
)

// Environment file keys recognized by the tool. Anything else found in the
// environment file is preserved but ignored.
const (
	KeyGithubAccessToken    = "GITHUB_ACCESS_TOKEN"
	KeyKubeconfig           = "KUBECONFIG"
	KeyKubeContext          = "KUBE_CONTEXT"
	KeyKubeNamespace        = "KUBE_NAMESPACE"
	KeyKubeVersion          = "KUBE_VERSION"
	KeyValidateKubeVersions = "VALIDATE_KUBE_VERSIONS"
	KeyPortForwardAddress   = "PORT_FORWARD_ADDRESS"
	KeyPortForwardPort      = "PORT_FORWARD_PORT"
)

// GithubTokenPlaceholder marks a token that was never configured. The
// changelog command refuses to run while the token is at this value.
const GithubTokenPlaceholder = "unset-see-token-command"

// Settings is the resolved tool configuration after merging defaults, the
// process environment and the environment file. It is threaded explicitly
// into every operation; nothing reads these values from the ambient
// environment.
type Settings struct {
	GithubAccessToken    string
	Kubeconfig           string
	KubeContext          string
	KubeNamespace        string
	KubeVersion          string
	ValidateKubeVersions string
	PortForwardAddress   string
	PortForwardPort      int
}

func CreateDefaultSettings() Settings {
	return Settings{
		GithubAccessToken:    GithubTokenPlaceholder,
		Kubeconfig:           ".kube/kindev-config",
		KubeContext:          "",
		KubeNamespace:        "kindev",
		KubeVersion:          "1.16.9",
		ValidateKubeVersions: "1.16.0",
		PortForwardAddress:   "127.0.0.1",
		PortForwardPort:      8080,
	}
}

// Context returns the kube context to pass to kubectl and helm. An empty
// KUBE_CONTEXT means the context kind generates for the tool's own cluster.
func (s Settings) Context() string {
	if s.KubeContext != "" {
		return s.KubeContext
	}
	return "kind-" + ClusterName
}

// KubeEnv returns the environment entries every kubernetes-facing child
// process needs.
func (s Settings) KubeEnv() []string {
	return []string{KeyKubeconfig + "=" + s.Kubeconfig}
}

// ValidateVersionList splits VALIDATE_KUBE_VERSIONS into its comma-separated
// entries, dropping empty ones.
func (s Settings) ValidateVersionList() []string {
	var versions []string
	for _, v := range strings.Split(s.ValidateKubeVersions, ",") {
		if v = strings.TrimSpace(v); v != "" {
			versions = append(versions, v)
		}
	}
	return versions
}

// HasGithubToken reports whether a real token is configured.
func (s Settings) HasGithubToken() bool {
	return s.GithubAccessToken != "" && s.GithubAccessToken != GithubTokenPlaceholder
}

func (s Settings) Validate() error {
	if s.Kubeconfig == "" {
		return fmt.Errorf("setting %s is empty", KeyKubeconfig)
	}
	if s.KubeNamespace == "" {
		return fmt.Errorf("setting %s is empty", KeyKubeNamespace)
	}
	if s.KubeVersion == "" {
		return fmt.Errorf("setting %s is empty", KeyKubeVersion)
	}
	if s.PortForwardAddress == "" {
		return fmt.Errorf("setting %s is empty", KeyPortForwardAddress)
	}
	if s.PortForwardPort <= 0 || s.PortForwardPort > 65535 {
		return fmt.Errorf("setting %s has invalid port %d", KeyPortForwardPort, s.PortForwardPort)
	}
	if len(s.ValidateVersionList()) == 0 {
		return fmt.Errorf("setting %s lists no versions", KeyValidateKubeVersions)
	}
	return nil
}
