package handlers

// @title Task Scheduler API
// @version 1.0
// @description Create and list scheduled task definitions and write placeholder objects

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @tag.name tasks
// @tag.description Task definition operations

// @tag.name objects
// @tag.description Object store operations
