// Package watch contains the dispatcher that ties the pipeline
// together: wait for a relevant compositor event, reload state for the
// watched kind, enrich, filter, emit.
//
// The loop is strictly sequential. Events arriving while a cycle is in
// flight queue up on the socket; the subsequent reload fetches current
// state, so bursts naturally coalesce into one snapshot. Decode
// failures and mid-cycle query losses skip the cycle and keep the loop
// alive, while losing the event stream ends the run with
// EventChannelError so supervisors notice the compositor is gone.
package watch
