// Package planner builds day-by-day schedules from a task backlog and a
// fixed daily capacity. It also parses the "name | hours | date" backlog
// text format used by the dashboard form.
package planner
