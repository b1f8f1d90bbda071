package lexical

import (
	"github.com/spigell/interview-agent/internal/ai"
)

// DefaultGazetteer maps entity labels to the names recognized without a model.
func DefaultGazetteer() map[string][]string {
	return map[string][]string{
		ai.LabelSkill: {
			"Python", "R", "SQL", "Go", "Java", "JavaScript", "TypeScript", "Scala", "C++",
			"Machine Learning", "Deep Learning", "Data Analysis", "Statistics",
			"Natural Language Processing", "Computer Vision", "Data Visualization",
			"A/B Testing", "ETL",
		},
		ai.LabelProduct: {
			"TensorFlow", "PyTorch", "scikit-learn", "Pandas", "NumPy", "Spark", "Hadoop",
			"Kubernetes", "Docker", "AWS", "GCP", "Azure", "Tableau", "Power BI", "Excel",
			"PostgreSQL", "MySQL", "MongoDB", "Kafka", "Airflow", "Snowflake", "BigQuery",
		},
	}
}

// stopWords end a noun chunk. The list favors function words and common
// verbs found in job posts and résumés.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "nor", "of", "in", "on", "at", "to", "for",
		"from", "by", "with", "without", "as", "into", "onto", "over", "under", "about",
		"is", "are", "was", "were", "be", "been", "being", "am", "has", "have", "had",
		"do", "does", "did", "will", "would", "should", "can", "could", "may", "might", "must",
		"i", "we", "you", "he", "she", "it", "they", "me", "us", "him", "her", "them",
		"my", "our", "your", "his", "its", "their", "this", "that", "these", "those",
		"who", "whom", "which", "what", "where", "when", "why", "how",
		"not", "no", "very", "also", "so", "than", "then", "there", "here", "if",
		"looking", "seeking", "join", "joined", "work", "worked", "working", "build",
		"built", "building", "use", "used", "using", "develop", "developed", "developing",
		"led", "leading", "manage", "managed", "managing", "help", "helped",
		"including", "across", "within", "per", "via", "etc",
	} {
		stopWords[w] = struct{}{}
	}
}
