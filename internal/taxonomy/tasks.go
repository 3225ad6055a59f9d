package taxonomy

// taskSkills holds the built-in task/responsibility nodes, indexed and
// searched separately from skill nodes via SkillNode.Type == SkillTypeTask.
// Mapper.map_tasks restricts its nearest-neighbor queries to this
// partition via the metadata_filter described in §4.5.
var taskSkills = []SkillNode{
	{ID: "task-lead-team", CanonicalName: "Lead a team", Domain: DomainManagement, Category: CategoryLeadership, Type: SkillTypeTask,
		Aliases: []string{"led a team", "managed a team", "team lead"}},
	{ID: "task-architect-system", CanonicalName: "Architect a system", Domain: DomainEngineering, Category: CategoryBackend, Type: SkillTypeTask,
		Aliases: []string{"architected", "designed the architecture", "system design"}},
	{ID: "task-build-api", CanonicalName: "Build an API", Domain: DomainEngineering, Category: CategoryAPI, Type: SkillTypeTask,
		Aliases: []string{"built an api", "built apis", "developed an api"}},
	{ID: "task-scale-infrastructure", CanonicalName: "Scale infrastructure", Domain: DomainDevOps, Category: CategoryCloud, Type: SkillTypeTask,
		Aliases: []string{"scaled infrastructure", "scaled the platform", "handled scale"}},
	{ID: "task-mentor-engineers", CanonicalName: "Mentor engineers", Domain: DomainManagement, Category: CategoryLeadership, Type: SkillTypeTask,
		Aliases: []string{"mentored", "coached engineers", "mentorship"}},
	{ID: "task-own-roadmap", CanonicalName: "Own a product roadmap", Domain: DomainManagement, Category: CategoryProjectMgmt, Type: SkillTypeTask,
		Aliases: []string{"owned the roadmap", "drove the roadmap"}},
	{ID: "task-migrate-system", CanonicalName: "Migrate a system", Domain: DomainEngineering, Category: CategoryBackend, Type: SkillTypeTask,
		Aliases: []string{"migrated", "led a migration", "migration"}},
	{ID: "task-optimize-performance", CanonicalName: "Optimize performance", Domain: DomainEngineering, Category: CategoryBackend, Type: SkillTypeTask,
		Aliases: []string{"optimized performance", "improved latency", "performance tuning"}},
	{ID: "task-design-data-pipeline", CanonicalName: "Design a data pipeline", Domain: DomainDataScience, Category: CategoryDataTools, Type: SkillTypeTask,
		Aliases: []string{"built a data pipeline", "designed etl", "etl pipeline"}},
	{ID: "task-conduct-code-review", CanonicalName: "Conduct code reviews", Domain: DomainEngineering, Category: CategoryTesting, Type: SkillTypeTask,
		Aliases: []string{"code review", "reviewed pull requests"}},
	{ID: "task-own-incident-response", CanonicalName: "Own incident response", Domain: DomainDevOps, Category: CategoryDevOps, Type: SkillTypeTask,
		Aliases: []string{"on-call", "incident response", "oncall rotation"}},
	{ID: "task-present-to-stakeholders", CanonicalName: "Present to stakeholders", Domain: DomainCommunication, Category: CategoryCommunication, Type: SkillTypeTask,
		Aliases: []string{"presented to leadership", "stakeholder communication"}},
	{ID: "task-hire-interview", CanonicalName: "Hire and interview candidates", Domain: DomainManagement, Category: CategoryLeadership, Type: SkillTypeTask,
		Aliases: []string{"conducted interviews", "hiring", "interviewed candidates"}},
	{ID: "task-write-design-doc", CanonicalName: "Write a design document", Domain: DomainEngineering, Category: CategoryBackend, Type: SkillTypeTask,
		Aliases: []string{"design doc", "wrote an rfc", "technical proposal"}},
	{ID: "task-automate-deployment", CanonicalName: "Automate deployment", Domain: DomainDevOps, Category: CategoryDevOps, Type: SkillTypeTask,
		Aliases: []string{"automated deployments", "built ci/cd", "continuous deployment"}},
}
