package trigdet

type Configuration struct {
	MaxEvents int    `json:"max_events"`
	Verbosity int    `json:"verbosity"`
	Skip      int    `json:"skip"`
	FileIn    string `json:"file_in"`
	Detector  string `json:"detector"`
	Prefix    string `json:"prefix"`
	Discard   bool   `json:"discard"`
	NoDB      bool   `json:"no_db"`
	Host      string `json:"host"`
	User      string `json:"user"`
	Passwd    string `json:"pass"`
	DBName    string `json:"dbname"`
	NumAdc    int    `json:"num_adc"`
	NumTdc    int    `json:"num_tdc"`
	AdcNames  string `json:"adc_names"`
	TdcNames  string `json:"tdc_names"`
	MapFile   string `json:"map_file"`
}

var configuration Configuration

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}
