//go:build unit || integration

package report

func sampleRecord() Record {
	return Record{
		"rsmGCXActivityContractClass": {
			"K:\\rsmGCX\\AxClass\\rsmGCXActivityContractClass.xml 1 KB XML File 4/8/2024 3:58:20 PM 3\n",
			"3 \t<Name>rsmGCXActivityContractClass</Name>\n",
			"7 class rsmGCXActivityContractClass\n",
			"\n",
			"K:\\rsmGCX\\AxClass\\rsmGCXTimesheetWebservice.xml 10 KB XML File 4/8/2024 3:58:23 PM 3\n",
			"14     [ AifCollectionTypeAttribute('return', Types::Class, classStr(rsmGCXActivityContractClass))]\n",
			"\n",
		},
		"rsmGCXTable": {
			"K:\\rsmGCX\\AxTable\\rsmGCXTable.xml 2 KB XML File 4/8/2024 3:58:20 PM 1\n",
			"3 \t<Name>rsmGCXTable</Name>   \n",
			"\n",
		},
		"rsmGCXÉlément": {
			"/model/é.xml 1 kB XML File 1/2/2024 3:04:05 PM 1\n",
			"1 \"quoted\" & <tag> é\n",
			"\n",
		},
		"rsmGCXUnreferenced": {},
	}
}
