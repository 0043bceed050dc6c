package project

// Field identifies a single-valued configuration field. The values double as
// the wizard step ids and the keys of the answers file.
type Field string

// Configuration fields in wizard order.
const (
	FieldName        Field = "project_name"
	FieldDescription Field = "description"
	FieldGroupID     Field = "group_id"
	FieldArtifactID  Field = "artifact_id"
	FieldPackageName Field = "package_name"
	FieldOutputDir   Field = "output_dir"
	FieldBuildSystem Field = "build_system"
	FieldPackaging   Field = "packaging"
	FieldJavaVersion Field = "java_version"
	FieldBootVersion Field = "boot_version"
)
