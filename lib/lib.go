/*package lib contains the configuration plumbing shared by the reion
command line tool: parsing the config file and command line overrides,
validating the result, and building the model and parameter objects the
solver backends consume. Almost all of the real work is done by lib/'s
subpackages.
*/
package lib
