/*
Package config loads the runtime settings of sheetmerge.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Picks a parser by file extension
- Overlays the fields a file sets onto Default
- Validates the result before anyone uses it

🔄 Flow:
1. Load reads the file (an empty path means Default)
2. The registered Parser decodes it, rejecting unknown keys
3. Durations are parsed from Go duration strings ("3s", "200ms")
4. Validate checks levels, bounds and glob patterns

Settings are read only. Nothing in this package writes them back.

🔍 Example:

	# .sheetmerge.yaml
	log_level: debug
	progress_reset_delay: 5s
	animation:
	  steps: 10
	  interval: 100ms
	  ceiling: 80
	target_patterns:
	  - "*.xlsx"
*/
package config
