package dump_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nvramgen/internal/services/dump"
)

func newParser() *dump.Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return dump.New(log)
}

func TestParse_Basic(t *testing.T) {
	d, err := newParser().Parse("wl1_channel=132\nwan_hostname=gw\n")
	require.NoError(t, err)

	require.Equal(t, 2, d.Len())
	v, ok := d.Get("wl1_channel")
	require.True(t, ok)
	assert.Equal(t, "132", v)
	assert.Equal(t, []string{"wl1_channel", "wan_hostname"}, d.Names())
}

func TestParse_SplitsOnFirstEquals(t *testing.T) {
	d, err := newParser().Parse("dhcpd_static=00:11:22:33:44:55<192.168.1.2=pc\n")
	require.NoError(t, err)

	v, ok := d.Get("dhcpd_static")
	require.True(t, ok)
	assert.Equal(t, "00:11:22:33:44:55<192.168.1.2=pc", v)
}

func TestParse_MultilineValue(t *testing.T) {
	text := "sshd_authkeys=ssh-rsa AAAA user@host\nssh-rsa BBBB other@host\nntp_server=pool.ntp.org\n"
	d, err := newParser().Parse(text)
	require.NoError(t, err)

	require.Equal(t, 2, d.Len())
	v, _ := d.Get("sshd_authkeys")
	assert.Equal(t, "ssh-rsa AAAA user@host\nssh-rsa BBBB other@host", v)
	v, _ = d.Get("ntp_server")
	assert.Equal(t, "pool.ntp.org", v)
}

func TestParse_StripsEpilogue(t *testing.T) {
	d, err := newParser().Parse("wan_proto=dhcp\n---\n63851 bytes, 16533 left\n")
	require.NoError(t, err)

	require.Equal(t, 1, d.Len())
	v, _ := d.Get("wan_proto")
	assert.Equal(t, "dhcp", v)
}

func TestParse_DuplicateLastWinsFirstPosition(t *testing.T) {
	d, err := newParser().Parse("a=1\nb=2\na=3\n")
	require.NoError(t, err)

	require.Equal(t, 2, d.Len())
	v, _ := d.Get("a")
	assert.Equal(t, "3", v)
	assert.Equal(t, []string{"a", "b"}, d.Names())
}

func TestParse_SkipsLeadingMalformedLines(t *testing.T) {
	d, err := newParser().Parse("not a setting\n\nwan_proto=dhcp\n")
	require.NoError(t, err)

	require.Equal(t, 1, d.Len())
	_, ok := d.Get("wan_proto")
	assert.True(t, ok)
}

func TestParse_EmptyInput(t *testing.T) {
	d, err := newParser().Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestParse_CRLF(t *testing.T) {
	d, err := newParser().Parse("a=1\r\nb=2\r\n")
	require.NoError(t, err)

	v, _ := d.Get("a")
	assert.Equal(t, "1", v)
	v, _ = d.Get("b")
	assert.Equal(t, "2", v)
}

func TestParse_EmptyValue(t *testing.T) {
	d, err := newParser().Parse("wan_gateway=\n")
	require.NoError(t, err)

	v, ok := d.Get("wan_gateway")
	require.True(t, ok)
	assert.Equal(t, "", v)
}
