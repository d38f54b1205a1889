package section

import (
	"strings"

	"nvramgen/internal/domain"
)

// OtherTitle is the catch-all section for names no rule matches. It always
// sorts after every configured section.
const OtherTitle = "Other"

// builtinRules is the curated routing table for FreshTomato NVRAM keys,
// in display order. Edit freely; order is significant (first match wins).
var builtinRules = []domain.ClassificationRule{
	{Kind: domain.MatchNames, Title: "Name", Patterns: []string{
		"router_name", "wan_hostname", "wan_domain", "lan_hostname",
	}},
	{Kind: domain.MatchPrefix, Title: "LAN", Patterns: []string{
		"lan_", "lan1_", "lan2_", "lan3_",
	}},
	{Kind: domain.MatchPrefix, Title: "DHCP", Patterns: []string{
		"dhcp_", "dhcp1_", "dhcp2_", "dhcp3_", "dhcpd_",
	}},
	{Kind: domain.MatchPrefix, Title: "WAN", Patterns: []string{
		"wan_", "wan2_", "wan3_", "wan4_", "modem_", "mwan_",
	}},
	{Kind: domain.MatchPrefix, Title: "Wireless (2.4 GHz)", Patterns: []string{
		"wl0_", "wl0.",
	}},
	{Kind: domain.MatchPrefix, Title: "Wireless (5 GHz)", Patterns: []string{
		"wl1_", "wl1.", "wl2_", "wl2.",
	}},
	{Kind: domain.MatchPrefix, Title: "Wireless (shared)", Patterns: []string{
		"wl_", "wlx_", "wps_",
	}},
	{Kind: domain.MatchPrefix, Title: "Admin Access", Patterns: []string{
		"http_", "https_", "web_", "remote_",
	}},
	{Kind: domain.MatchPrefix, Title: "SSH & Telnet", Patterns: []string{
		"sshd_", "telnetd_",
	}},
	{Kind: domain.MatchPrefix, Title: "DDNS", Patterns: []string{
		"ddnsx",
	}},
	{Kind: domain.MatchPrefix, Title: "Port Forwarding", Patterns: []string{
		"portforward", "ipv6_portforward", "dmz_", "trigforward",
	}},
	{Kind: domain.MatchPrefix, Title: "UPnP", Patterns: []string{
		"upnp_",
	}},
	{Kind: domain.MatchPrefix, Title: "QoS", Patterns: []string{
		"qos_", "qosl_", "new_qoslimit",
	}},
	{Kind: domain.MatchPrefix, Title: "Access Restriction", Patterns: []string{
		"rrule",
	}},
	{Kind: domain.MatchPrefix, Title: "Firewall", Patterns: []string{
		"fw_", "ne_", "nf_", "multicast_", "block_wan",
	}},
	{Kind: domain.MatchPrefix, Title: "Routing", Patterns: []string{
		"routes_", "dr_", "emf_",
	}},
	{Kind: domain.MatchPrefix, Title: "Time", Patterns: []string{
		"ntp_", "tm_",
	}},
	{Kind: domain.MatchPrefix, Title: "Logging", Patterns: []string{
		"log_",
	}},
	{Kind: domain.MatchPrefix, Title: "VPN", Patterns: []string{
		"vpn_", "pptp_", "pptpd_", "wg0_", "wg1_", "wg2_",
	}},
	{Kind: domain.MatchPrefix, Title: "USB & NAS", Patterns: []string{
		"usb_", "smbd_", "ftp_", "ms_", "idle_",
	}},
	{Kind: domain.MatchPrefix, Title: "Scripts", Patterns: []string{
		"script_",
	}},
}

// ignoreRule excludes device-local noise from the generated script: values
// a fresh device regenerates itself or that must not be replayed verbatim.
type ignoreRule struct {
	exact  []string
	prefix []string
	suffix []string
}

var ignored = ignoreRule{
	exact:  []string{"http_id"},
	prefix: []string{"os_"},
	suffix: []string{"_cache", "_hwaddr"},
}

func (r ignoreRule) matches(name string) bool {
	for _, e := range r.exact {
		if name == e {
			return true
		}
	}
	for _, p := range r.prefix {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	for _, s := range r.suffix {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	// SSH host keys are regenerated per device.
	return strings.HasPrefix(name, "sshd_") && strings.HasSuffix(name, "key")
}
