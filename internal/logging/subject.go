package logging

import "strings"

// FormatSubject builds the client/command subject string used in console output.
func FormatSubject(clientID, command string) string {
	clientID = strings.TrimSpace(clientID)
	command = strings.TrimSpace(command)
	parts := make([]string, 0, 2)
	if clientID != "" {
		parts = append(parts, "conn:"+clientID)
	}
	if command != "" {
		parts = append(parts, command)
	}
	return strings.Join(parts, " · ")
}
