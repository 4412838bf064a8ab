package domain

// Diagnostic routines for the failure classes where automated context
// gathering saves the round of kubectl archaeology everyone types by hand.
// Every step is a read-only command pinned to the settings' kubeconfig and
// context; steps run in order and failures never cascade.

func kubectlStep(s Settings, label string, args ...string) DiagnosticStep {
	return DiagnosticStep{
		Label: label,
		Argv:  append([]string{"kubectl", "--context", s.Context()}, args...),
		Env:   s.KubeEnv(),
	}
}

// ClusterProvisioningRoutine inspects the layers a cluster bring-up depends
// on, from the Docker daemon upward.
func ClusterProvisioningRoutine(s Settings) DiagnosticRoutine {
	return DiagnosticRoutine{
		Name: "cluster provisioning failure",
		Steps: []DiagnosticStep{
			{Label: "docker daemon", Argv: []string{"docker", "info"}},
			{Label: "kind clusters", Argv: []string{"kind", "get", "clusters"}, Env: s.KubeEnv()},
			kubectlStep(s, "nodes", "get", "nodes", "-o", "wide"),
			kubectlStep(s, "system pods", "--namespace", "kube-system", "get", "pods"),
		},
	}
}

// ChartUpgradeRoutine shows what a failed release left behind: workload
// state, scheduling events, tiller health, and the logs of the release's
// own pods.
func ChartUpgradeRoutine(s Settings, release string) DiagnosticRoutine {
	ns := s.KubeNamespace
	return DiagnosticRoutine{
		Name: "chart upgrade failure",
		Steps: []DiagnosticStep{
			kubectlStep(s, "pods in "+ns, "--namespace", ns, "get", "pods", "-o", "wide"),
			kubectlStep(s, "recent events in "+ns, "--namespace", ns, "get", "events", "--sort-by=.lastTimestamp"),
			kubectlStep(s, "tiller deployment", "--namespace", "kube-system", "get", "deployment", "tiller-deploy"),
			kubectlStep(s, "release pod logs", "--namespace", ns, "logs", "--selector", "release="+release, "--tail=50"),
			{
				Label: "helm releases",
				Argv:  []string{"helm", "--kube-context", s.Context(), "list"},
				Env:   s.KubeEnv(),
			},
		},
	}
}

// TestRunRoutine captures the cluster state an end-to-end test failure
// usually hinges on.
func TestRunRoutine(s Settings) DiagnosticRoutine {
	ns := s.KubeNamespace
	return DiagnosticRoutine{
		Name: "test run failure",
		Steps: []DiagnosticStep{
			kubectlStep(s, "pods in "+ns, "--namespace", ns, "get", "pods", "-o", "wide"),
			kubectlStep(s, "services in "+ns, "--namespace", ns, "get", "svc"),
			kubectlStep(s, "recent events in "+ns, "--namespace", ns, "get", "events", "--sort-by=.lastTimestamp"),
			kubectlStep(s, "pod details in "+ns, "--namespace", ns, "describe", "pods"),
		},
	}
}
