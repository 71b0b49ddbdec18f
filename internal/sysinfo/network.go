package sysinfo

import (
	"net"
	"os"

	"llamactld/pkg/types"
)

// Info reports the machine hostname and the LAN address used for outbound
// traffic. Best effort: fields stay empty when discovery fails.
func Info() types.NetworkInfo {
	var info types.NetworkInfo
	if hn, err := os.Hostname(); err == nil {
		info.Hostname = hn
	}
	// Dialing UDP to a public address selects the outbound interface
	// without sending any packet.
	if conn, err := net.Dial("udp", "8.8.8.8:80"); err == nil {
		if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
			info.Local = addr.IP.String()
		}
		_ = conn.Close()
	}
	return info
}
