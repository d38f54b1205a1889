// Package script renders classified changes as a /bin/sh replay script.
//
// The script starts with a shebang, groups nvram set commands under
// per-section comment headers in section rank order, and ends with an
// nvram commit trailer unless disabled. Values are shell-quoted with a
// deterministic, reversible rule so the script parses back to the exact
// (name, value) pairs it was rendered from.
package script
