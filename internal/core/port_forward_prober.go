package core

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

const (
	// defaultSettleDelay gives the freshly spawned port-forward time to
	// bind its local listener. Probing immediately would report a dead
	// tunnel that is merely still starting.
	defaultSettleDelay  = 1050 * time.Millisecond
	defaultProbeTimeout = 2 * time.Second
)

// PortForwardProber starts a detached port-forward and classifies what one
// bounded request against its local side learns about it. The result is an
// observation for the user, never a reason to tear the tunnel down.
type PortForwardProber interface {
	// Probe spawns the port-forward, settles, sends one request, and
	// returns the outcome together with the handle that stops the tunnel.
	Probe(settings domain.Settings, service string, localPort, remotePort int) (domain.ProbeOutcome, ports.DetachedHandle, error)
}

// HTTPPortForwardProber probes the tunnel with a plain HTTP GET.
type HTTPPortForwardProber struct {
	commandRunner ports.CommandRunner
	kubectlClient ports.KubectlClient
	settleDelay   time.Duration
	probeTimeout  time.Duration
}

func ProvideHTTPPortForwardProber(
	commandRunner ports.CommandRunner,
	kubectlClient ports.KubectlClient,
) *HTTPPortForwardProber {
	return &HTTPPortForwardProber{
		commandRunner: commandRunner,
		kubectlClient: kubectlClient,
		settleDelay:   defaultSettleDelay,
		probeTimeout:  defaultProbeTimeout,
	}
}

// Probe spawns the port-forward in the background, waits for it to settle,
// and sends a single request to the local side. The tunnel keeps running
// whatever the outcome; the returned handle stops it.
func (p *HTTPPortForwardProber) Probe(settings domain.Settings, service string, localPort, remotePort int) (domain.ProbeOutcome, ports.DetachedHandle, error) {
	inv := p.kubectlClient.PortForwardInvocation(settings, service, localPort, remotePort)
	handle, err := p.commandRunner.Detach(inv)
	if err != nil {
		return domain.ProbeFailed, nil, fmt.Errorf("failed to start port-forward: %v", err)
	}

	time.Sleep(p.settleDelay)

	url := fmt.Sprintf("http://%s:%d", settings.PortForwardAddress, localPort)
	return p.probeOnce(url), handle, nil
}

// probeOnce sends the request and classifies what came back. Any response
// counts as success, error statuses included: a hub answering 503 still
// proves the tunnel works.
func (p *HTTPPortForwardProber) probeOnce(url string) domain.ProbeOutcome {
	client := &http.Client{Timeout: p.probeTimeout}
	response, err := client.Get(url)
	if err == nil {
		response.Body.Close()
		return domain.ProbeSuccess
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ProbeSlowButAlive
	}
	return domain.ProbeFailed
}

var _ PortForwardProber = (*HTTPPortForwardProber)(nil)
