// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package config loads the optional doctool project file.

	            +-------------+
	            |   Config    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+  +----+----+  +----+----+
	|   HCL    |  |  YAML   |  |  JSON   |
	+----------+  +---------+  +---------+

🎯 Purpose:
- Reads .doctool.hcl (or .yaml/.yml/.json) from the project
- Declares extra publish groups and ignore patterns
- Overrides the application base path

🔍 Example:

	base_path = "."
	ignore    = ["*.bak"]

	publish "team-docker" {
	  from = "stubs/docker"
	  to   = "docker"
	}

	publish "team-ci" {
	  from = "stubs/ci/${env.CI_FLAVOR}.yml"
	  to   = ".github/workflows/ci.yml"
	}

Publish sources are resolved relative to the config file's directory,
destinations relative to the application root.
*/
package config
