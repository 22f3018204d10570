package common

import "net"

// GetLocalIPs returns the addresses the server is reachable on, localhost
// first, then the first non-loopback IPv4 address of each interface that
// is up.
func GetLocalIPs() []string {
	ips := []string{"localhost", "127.0.0.1"}

	interfaces, err := net.Interfaces()
	if err != nil {
		return ips
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp == 0 ||
			iface.Flags&net.FlagLoopback != 0 ||
			iface.Flags&net.FlagPointToPoint != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok || ipnet.IP.IsLoopback() || ipnet.IP.To4() == nil {
				continue
			}
			ips = append(ips, ipnet.IP.String())
			break
		}
	}
	return ips
}
