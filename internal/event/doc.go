// Package event decodes compositor event-stream lines and classifies
// them by the entity kinds they invalidate, so the watch loop only
// reloads state for notifications that can change its output.
package event
