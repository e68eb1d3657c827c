// Package loop provides a cooperative single-threaded interactor whose
// blocking run loop can be driven remotely through the scene manager.
//
// Work enters the loop via Post and runs on the goroutine that called
// Start. Observer callbacks fired from inside the loop may post more
// work, and may call TerminateApp to end the loop they are running on.
//
// An Interactor has two driving modes. Self-driven (the default), Start
// dispatches everything already posted and returns once idle, suitable
// for embedding in a host render loop that pumps repeatedly. Externally
// driven, Start blocks at idle and waits for posted work until
// TerminateApp, which is the mode a remote controller selects for the
// duration of a StartEventLoop call.
package loop
