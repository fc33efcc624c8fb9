// Package preflight checks that the directories and catalog document kd
// depends on are usable before a session starts.
//
// `kd config validate` renders every Result; a failed check carries the
// reason in Detail.
package preflight
