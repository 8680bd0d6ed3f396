package tasks

// Define registers all available tasks on r
func Define(r *Registry) {
	// Maintenance tasks
	r.Register(PurgeTaskHistoryTask.TaskID(), PurgeTaskHistoryTask.HandleExecution)

	// Analytics tasks
	r.Register(PurgePageViewsTask.TaskID(), PurgePageViewsTask.HandleExecution)
}

// DefineTasks registers all available tasks on the global registry
func DefineTasks() {
	Define(GlobalRegistry)
}
