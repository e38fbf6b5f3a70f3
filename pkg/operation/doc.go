/*
Package operation runs the merge, sort and create operations one at a time.

	+--------------+      +-----------+      +----------+
	| Start(kind)  +----->+  guard    +----->+  Work    |
	| (foreground) |      | idle/run  |      | (engine) |
	+--------------+      +-----+-----+      +----+-----+
	                            |                 |
	                            v                 v
	                      +-----+-----------------+-----+
	                      |        status.Sink          |
	                      +-----------------------------+

🎯 Purpose:
- Accept at most one operation at a time, reject the rest with a message
- Run the accepted Work on a background goroutine
- Report lock, ongoing, progress and completion signals
- Animate progress for work that has no progress of its own

🔄 Flow:
1. Start checks and sets the guard atomically
2. Lock and ongoing signals go out, progress drops to 0
3. Work runs; failures and panics become an error completion
4. A successful merge clears the target selection
5. Unlock and standby go out, progress resets after a grace period

🤝 Interfaces:
- status.Sink: receives every signal
- TargetClearer: cleared after a successful merge
*/
package operation
