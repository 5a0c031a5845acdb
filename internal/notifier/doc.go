// Package notifier delivers court availability reports. The email notifier
// sends an HTML summary over SMTP when open slots exist; a dry-run notifier
// prints the same report for local use.
package notifier
