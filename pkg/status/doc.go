/*
Package status is the boundary between the core and whatever presents it.

	      +--------------+        +-------------+
	      | Orchestrator |        |  Selection  |
	      +------+-------+        +------+------+
	             |                       |
	             +-----------+-----------+
	                         |
	                  +------+------+
	                  |   Poster    |
	                  | (foreground)|
	                  +------+------+
	                         |
	                  +------+------+
	                  |    Sink     |
	                  | (UI / term) |
	                  +-------------+

🎯 Purpose:
- Defines the signals the core emits (lock, progress, ongoing, completion)
- Marshals every signal onto a single foreground context before delivery
- Provides a terminal sink and a recording sink

🔄 Flow:
1. Core code calls a Sink method from any goroutine
2. Dispatch posts the call onto the Poster
3. The Poster runs it on the foreground context, in order

🤝 Interfaces:
- Sink: receives signals
- Poster: runs callbacks on the foreground context
*/
package status
