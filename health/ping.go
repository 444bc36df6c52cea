package health

import (
	"context"
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// PingCheck returns a check that sends a single ICMP echo to target.
// Unprivileged UDP ping, so it works without CAP_NET_RAW.
func PingCheck(target string, timeout time.Duration) CheckFunc {
	return func(ctx context.Context) error {
		pinger, err := probing.NewPinger(target)
		if err != nil {
			return fmt.Errorf("ping %s: %w", target, err)
		}
		pinger.Count = 1
		pinger.Timeout = timeout
		pinger.SetPrivileged(false)

		if err := pinger.RunWithContext(ctx); err != nil {
			return fmt.Errorf("ping %s: %w", target, err)
		}
		if pinger.Statistics().PacketsRecv == 0 {
			return fmt.Errorf("ping %s: no reply", target)
		}
		return nil
	}
}
